// Package engine owns the canonical AppState for one user scope and is the
// only legal way to mutate it. Mutations apply optimistically in memory,
// persist to the local cache synchronously, and mirror to the remote store
// from a background worker that never blocks or fails the caller.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/devffelix/selfbank/internal/cache"
	"github.com/devffelix/selfbank/internal/remote"
)

// Gateway is the remote persistence contract the engine consumes. A nil
// Gateway means offline: local cache only.
type Gateway interface {
	GetOrCreateSettings(ctx context.Context, userID string, goalTitle string, goalAmount float64) (*remote.Settings, error)
	UpdateSettings(ctx context.Context, set *remote.Settings) error

	InsertItem(ctx context.Context, in remote.ItemInsert) (int64, error)
	ListItems(ctx context.Context, userID string) ([]remote.Item, error)
	UpdateItemCompletion(ctx context.Context, id int64, completedAt *int64, lastCompletedDate *string) error
	DeleteItem(ctx context.Context, id int64) error

	InsertReward(ctx context.Context, in remote.RewardInsert) (int64, error)
	ListRewards(ctx context.Context, userID string) ([]remote.Reward, error)
	DeleteReward(ctx context.Context, id int64) error

	ResetUser(ctx context.Context, userID string, goalTitle string, goalAmount float64) error
}

// Engine is the application state engine for a single, explicit user scope.
// The scope is fixed at construction; there is no ambient "current user".
type Engine struct {
	mu    sync.Mutex
	scope string
	state *AppState

	cache  *cache.Store // nil disables persistence entirely
	remote Gateway      // nil disables mirroring

	// Local ids are stable for an item's whole lifetime; remote row ids are
	// tracked here instead of being rewritten into the entity.
	idMu sync.Mutex
	ids  map[string]int64

	queue chan command
	done  chan struct{}
}

// New builds an engine for scope, loading the cached snapshot if one exists
// and falling back to the default empty state otherwise. When gw is non-nil
// a mirror worker is started; call Close to drain it.
func New(scope string, c *cache.Store, gw Gateway) *Engine {
	e := &Engine{
		scope:  scope,
		cache:  c,
		remote: gw,
		ids:    map[string]int64{},
	}
	e.state = e.loadSnapshot()

	if gw != nil {
		e.queue = make(chan command, 64)
		e.done = make(chan struct{})
		go e.runSync()
	}
	return e
}

func (e *Engine) Scope() string { return e.scope }

// Snapshot returns a deep-copied read-only view of the current state.
func (e *Engine) Snapshot() AppState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Close stops the mirror worker after draining any queued remote writes, so
// a short-lived process still issues every mirror before exit.
func (e *Engine) Close() {
	if e.queue == nil {
		return
	}
	close(e.queue)
	<-e.done
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

// persistLocked writes the current state to the cache. Callers hold e.mu.
// Cache failures degrade to in-memory state only; they never surface.
func (e *Engine) persistLocked() {
	if e.cache == nil {
		return
	}
	data, err := encodeSnapshot(e.state)
	if err != nil {
		slog.Warn("snapshot encode failed", "scope", e.scope, "err", err)
		return
	}
	if err := e.cache.Set(e.cacheKey(), data); err != nil {
		slog.Warn("cache write failed", "scope", e.scope, "err", err)
	}
}

func (e *Engine) loadSnapshot() *AppState {
	if e.cache == nil {
		return DefaultState()
	}
	data, ok, err := e.cache.Get(e.cacheKey())
	if err != nil {
		slog.Warn("cache read failed", "scope", e.scope, "err", err)
		return DefaultState()
	}
	if !ok {
		return DefaultState()
	}
	st, err := decodeSnapshot(data)
	if err != nil {
		slog.Warn("cached snapshot corrupt, starting fresh", "scope", e.scope, "err", err)
		return DefaultState()
	}
	return st
}
