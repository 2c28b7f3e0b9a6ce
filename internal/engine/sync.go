package engine

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/devffelix/selfbank/internal/remote"
)

// Mutations enqueue commands for the mirror worker instead of writing to the
// remote store inline. The worker logs failures and never feeds them back
// into the already-returned operation result.

type cmdKind int

const (
	cmdInsertItem cmdKind = iota
	cmdUpdateItemCompletion
	cmdDeleteItem
	cmdInsertReward
	cmdDeleteReward
	cmdSaveSettings
	cmdResetUser
)

func (k cmdKind) String() string {
	switch k {
	case cmdInsertItem:
		return "insert-item"
	case cmdUpdateItemCompletion:
		return "update-item-completion"
	case cmdDeleteItem:
		return "delete-item"
	case cmdInsertReward:
		return "insert-reward"
	case cmdDeleteReward:
		return "delete-reward"
	case cmdSaveSettings:
		return "save-settings"
	case cmdResetUser:
		return "reset-user"
	default:
		return "unknown"
	}
}

// command carries value copies of everything the worker needs; it never
// touches live engine state.
type command struct {
	kind    cmdKind
	item    GrindItem
	reward  RewardItem
	balance float64
	goal    Goal
}

// enqueue hands a command to the mirror worker without ever blocking the
// mutation that produced it. A full queue (hung gateway) drops the mirror
// with a warning; the local state and cache already hold the truth.
func (e *Engine) enqueue(c command) {
	if e.queue == nil {
		return
	}
	select {
	case e.queue <- c:
	default:
		slog.Warn("mirror queue full, dropping remote write", "cmd", c.kind.String(), "scope", e.scope)
	}
}

func (e *Engine) runSync() {
	defer close(e.done)
	ctx := context.Background()
	for c := range e.queue {
		if err := e.mirror(ctx, c); err != nil {
			slog.Warn("remote mirror failed", "cmd", c.kind.String(), "scope", e.scope, "err", err)
		}
	}
}

func (e *Engine) mirror(ctx context.Context, c command) error {
	switch c.kind {
	case cmdInsertItem:
		id, err := e.remote.InsertItem(ctx, remote.ItemInsert{
			UserID:            e.scope,
			Title:             c.item.Title,
			Value:             c.item.Value,
			Type:              string(c.item.Type),
			CreatedAt:         c.item.CreatedAt,
			LastCompletedDate: c.item.LastCompletedDate,
			CompletedAt:       c.item.CompletedAt,
		})
		if err != nil {
			return err
		}
		e.setRemoteID(c.item.ID, id)
		return nil

	case cmdUpdateItemCompletion:
		rid, ok := e.remoteID(c.item.ID)
		if !ok {
			slog.Debug("no remote row for item, skipping mirror", "id", c.item.ID)
			return nil
		}
		return e.remote.UpdateItemCompletion(ctx, rid, c.item.CompletedAt, c.item.LastCompletedDate)

	case cmdDeleteItem:
		rid, ok := e.remoteID(c.item.ID)
		if !ok {
			slog.Debug("no remote row for item, skipping mirror", "id", c.item.ID)
			return nil
		}
		return e.remote.DeleteItem(ctx, rid)

	case cmdInsertReward:
		id, err := e.remote.InsertReward(ctx, remote.RewardInsert{
			UserID: e.scope,
			Title:  c.reward.Title,
			Cost:   c.reward.Cost,
		})
		if err != nil {
			return err
		}
		e.setRemoteID(c.reward.ID, id)
		return nil

	case cmdDeleteReward:
		rid, ok := e.remoteID(c.reward.ID)
		if !ok {
			slog.Debug("no remote row for reward, skipping mirror", "id", c.reward.ID)
			return nil
		}
		return e.remote.DeleteReward(ctx, rid)

	case cmdSaveSettings:
		return e.remote.UpdateSettings(ctx, &remote.Settings{
			UserID:     e.scope,
			Balance:    c.balance,
			GoalTitle:  c.goal.Title,
			GoalAmount: c.goal.TargetAmount,
		})

	case cmdResetUser:
		return e.remote.ResetUser(ctx, e.scope, c.goal.Title, c.goal.TargetAmount)
	}
	return nil
}

func (e *Engine) setRemoteID(localID string, rowID int64) {
	e.idMu.Lock()
	e.ids[localID] = rowID
	e.idMu.Unlock()
}

// remoteID resolves a local id to its remote row id. Entities loaded by
// reconciliation carry the remote row id in numeric string form already;
// entities created this session are looked up in the id table. Anything else
// never reached the remote store, and mirrors against it no-op.
func (e *Engine) remoteID(localID string) (int64, bool) {
	e.idMu.Lock()
	rid, ok := e.ids[localID]
	e.idMu.Unlock()
	if ok {
		return rid, true
	}
	if n, err := strconv.ParseInt(localID, 10, 64); err == nil {
		return n, true
	}
	return 0, false
}

func (e *Engine) clearRemoteIDs() {
	e.idMu.Lock()
	e.ids = map[string]int64{}
	e.idMu.Unlock()
}

// enqueueSettingsLocked snapshots balance and goal for a settings mirror.
// Callers hold e.mu.
func (e *Engine) enqueueSettingsLocked() {
	e.enqueue(command{kind: cmdSaveSettings, balance: e.state.Balance, goal: e.state.Goal})
}
