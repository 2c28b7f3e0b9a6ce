package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/devffelix/selfbank/internal/cache"
	"github.com/devffelix/selfbank/internal/config"
	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/remote"
	"github.com/devffelix/selfbank/internal/session"
)

type app struct {
	cfgPath string
	cfg     config.Config
	id      session.Identity
	eng     *engine.Engine
}

func loadConfig() (string, config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return "", config.Config{}, err
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return "", config.Config{}, err
	}
	return path, cfg, nil
}

// openApp wires session, cache, remote store and engine together. Remote and
// cache failures degrade to whatever still works; only a missing profile is
// a hard error.
func openApp(ctx context.Context) (*app, func(), error) {
	path, cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	id := session.Resolve(cfg.User)
	if id.IsNone() {
		return nil, nil, errors.New("no active profile: run 'sb login <user-id>' or 'sb offline'")
	}

	var c *cache.Store
	if cs, err := cache.Open(cfg.CacheDir); err != nil {
		slog.Warn("cache unavailable, state will not persist", "err", err)
	} else {
		c = cs
	}

	var store *remote.Store
	var gw engine.Gateway
	if id.Remote() {
		st, err := remote.Open(ctx, cfg.DBPath)
		if err != nil {
			slog.Warn("remote store unavailable, continuing with local state", "err", err)
		} else {
			store = st
			gw = st
		}
	}

	eng := engine.New(id.UserID, c, gw)
	if gw != nil {
		if err := eng.Reconcile(ctx); err != nil {
			slog.Warn("reconcile failed, cached state stays in effect", "err", err)
		}
	}

	cleanup := func() {
		eng.Close()
		if store != nil {
			_ = store.Close()
		}
	}
	return &app{cfgPath: path, cfg: cfg, id: id, eng: eng}, cleanup, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveItem matches arg against item ids, id prefixes, then exact titles.
func (a *app) resolveItem(arg string) (engine.GrindItem, error) {
	st := a.eng.Snapshot()
	for _, it := range st.Items {
		if it.ID == arg {
			return it, nil
		}
	}
	var matches []engine.GrindItem
	for _, it := range st.Items {
		if strings.HasPrefix(it.ID, arg) {
			matches = append(matches, it)
		}
	}
	if len(matches) == 0 {
		for _, it := range st.Items {
			if it.Title == arg {
				matches = append(matches, it)
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return engine.GrindItem{}, fmt.Errorf("no item matches %q", arg)
	default:
		return engine.GrindItem{}, fmt.Errorf("%q is ambiguous (%d matches)", arg, len(matches))
	}
}

func (a *app) resolveReward(arg string) (engine.RewardItem, error) {
	st := a.eng.Snapshot()
	for _, r := range st.Rewards {
		if r.ID == arg {
			return r, nil
		}
	}
	var matches []engine.RewardItem
	for _, r := range st.Rewards {
		if strings.HasPrefix(r.ID, arg) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		for _, r := range st.Rewards {
			if r.Title == arg {
				matches = append(matches, r)
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return engine.RewardItem{}, fmt.Errorf("no reward matches %q", arg)
	default:
		return engine.RewardItem{}, fmt.Errorf("%q is ambiguous (%d matches)", arg, len(matches))
	}
}
