package engine

import (
	"encoding/json"
	"fmt"

	"github.com/devffelix/selfbank/internal/cache"
)

// snapshotBaseKey matches the storage key the shipped clients used, so a
// cache directory survives version upgrades.
const snapshotBaseKey = "selfbank_data"

const snapshotVersion = 1

type snapshotEnvelope struct {
	Version int      `json:"version"`
	State   AppState `json:"state"`
}

func (e *Engine) cacheKey() string {
	return cache.Key(snapshotBaseKey, e.scope)
}

func encodeSnapshot(st *AppState) ([]byte, error) {
	env := snapshotEnvelope{Version: snapshotVersion, State: *st}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*AppState, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", env.Version)
	}
	st := env.State
	if st.Items == nil {
		st.Items = []GrindItem{}
	}
	if st.Rewards == nil {
		st.Rewards = []RewardItem{}
	}
	return &st, nil
}
