package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMirrorInsertAndCompletion(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	it, err := e.AddItem("Ship report", 50, ItemTypeTask)
	require.NoError(t, err)
	_, err = e.CompleteItem(it.ID)
	require.NoError(t, err)
	e.Close()

	rows, err := gw.ListItems(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ship report", rows[0].Title)
	require.NotNil(t, rows[0].CompletedAt, "completion lands on the row the insert created")

	set := gw.settings["alice"]
	require.NotNil(t, set)
	require.Equal(t, 50.0, set.Balance)
}

func TestMirrorFailureNeverSurfaces(t *testing.T) {
	gw := newMemGateway()
	gw.failInserts = true
	e := New("alice", nil, gw)

	it, err := e.AddItem("Gym", 5, ItemTypeTask)
	require.NoError(t, err, "local mutation succeeds even when the store is down")

	// The item never got a remote row, so its completion mirror is skipped
	// rather than sent against a bogus id.
	_, err = e.CompleteItem(it.ID)
	require.NoError(t, err)
	e.Close()

	require.Empty(t, gw.items)
	require.Equal(t, 5.0, e.Snapshot().Balance)
}

func TestMirrorDeleteUsesMappedID(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	it, err := e.AddItem("Gym", 5, ItemTypeTask)
	require.NoError(t, err)
	require.NoError(t, e.DeleteItem(it.ID))
	e.Close()

	require.Empty(t, gw.items, "queued delete resolves the row id the insert produced")
}

func TestMirrorReward(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	_, err := e.AddReward("Movie night", 30)
	require.NoError(t, err)
	e.Close()

	rows, err := gw.ListRewards(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Movie night", rows[0].Title)
	require.Equal(t, 30.0, rows[0].Cost)
}

func TestRefusedRedeemMirrorsNothing(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	r, err := e.AddReward("Movie night", 30)
	require.NoError(t, err)

	_, err = e.Redeem(r.ID)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	e.Close()

	require.Contains(t, gw.calls, "insert-reward")
	require.NotContains(t, gw.calls, "update-settings", "a refused redeem reaches the store in no form")
}

func TestResetAllMirrorsResetUser(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	_, err := e.AddItem("Gym", 5, ItemTypeTask)
	require.NoError(t, err)
	_, err = e.AddReward("Movie night", 30)
	require.NoError(t, err)
	require.NoError(t, e.ResetAll())
	e.Close()

	require.Empty(t, gw.items)
	require.Empty(t, gw.rewards)
	require.Equal(t, 0.0, gw.settings["alice"].Balance)

	st := e.Snapshot()
	require.Equal(t, 0.0, st.Balance)
	require.Empty(t, st.Items)
	require.Empty(t, st.Rewards)
	require.Equal(t, DefaultGoalTitle, st.Goal.Title)
}

func TestImportStateRebuildsRemote(t *testing.T) {
	gw := newMemGateway()
	e := New("alice", nil, gw)

	_, err := e.AddItem("old", 1, ItemTypeTask)
	require.NoError(t, err)

	done := int64(1700000000000)
	e.ImportState(AppState{
		Balance: 42,
		Goal:    Goal{Title: "Bike", TargetAmount: 500},
		Items: []GrindItem{
			{ID: "a", Title: "imported task", Value: 10, Type: ItemTypeTask, CreatedAt: done, CompletedAt: &done},
		},
		Rewards: []RewardItem{
			{ID: "b", Title: "imported reward", Cost: 5},
		},
	})
	e.Close()

	rows, err := gw.ListItems(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1, "import purges before re-inserting")
	require.Equal(t, "imported task", rows[0].Title)
	require.NotNil(t, rows[0].CompletedAt)

	rewards, err := gw.ListRewards(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rewards, 1)

	require.Equal(t, 42.0, gw.settings["alice"].Balance)
	require.Equal(t, "Bike", gw.settings["alice"].GoalTitle)
}

func TestOfflineEngineNeverMirrors(t *testing.T) {
	e := New("offline_user", nil, nil)

	_, err := e.AddItem("Gym", 5, ItemTypeTask)
	require.NoError(t, err)
	e.Close()
	// Close on a gateway-less engine is a no-op; reaching here is the test.
}

func TestEnqueueNeverBlocksOnFullQueue(t *testing.T) {
	// An engine with a stalled worker: one-slot queue, nobody consuming.
	e := &Engine{
		scope: "alice",
		state: DefaultState(),
		ids:   map[string]int64{},
		queue: make(chan command, 1),
	}

	e.enqueue(command{kind: cmdSaveSettings})
	e.enqueue(command{kind: cmdSaveSettings}) // queue full; must return, not block

	require.Len(t, e.queue, 1, "overflow is dropped, the caller is never held up")
}

func TestRemoteIDResolution(t *testing.T) {
	e := New("alice", nil, nil)
	defer e.Close()

	e.setRemoteID("local-uuid", 7)
	rid, ok := e.remoteID("local-uuid")
	require.True(t, ok)
	require.EqualValues(t, 7, rid)

	rid, ok = e.remoteID("42")
	require.True(t, ok, "numeric ids from reconciliation pass through")
	require.EqualValues(t, 42, rid)

	_, ok = e.remoteID("never-synced-uuid")
	require.False(t, ok)

	e.clearRemoteIDs()
	_, ok = e.remoteID("local-uuid")
	require.False(t, ok)
}
