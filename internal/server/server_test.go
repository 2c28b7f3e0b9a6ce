package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/remote"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := remote.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ts := httptest.NewServer(NewServer(store).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestSettingsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "alice", got["userId"])
	require.EqualValues(t, 0, got["balance"])
	require.Equal(t, engine.DefaultGoalTitle, got["goalTitle"], "first contact seeds the engine defaults")
	require.EqualValues(t, engine.DefaultGoalTarget, got["goalAmount"])

	resp, _ = doJSON(t, http.MethodPut, ts.URL+"/api/v1/users/alice/settings", map[string]any{
		"balance": 75.0, "goalTitle": "Bike", "goalAmount": 500.0,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	require.EqualValues(t, 75, got["balance"])
	require.Equal(t, "Bike", got["goalTitle"])
}

func TestItemEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/users/alice/items", map[string]any{
		"title": "Ship report", "value": 50.0, "type": "TASK", "createdAt": 1700000000000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.Positive(t, created.ID)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []remote.Item
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)
	require.Equal(t, "Ship report", items[0].Title)

	resp, _ = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/v1/items/%d", ts.URL, created.ID), map[string]any{
		"completedAt": 1700000360000,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &items))
	require.NotNil(t, items[0].CompletedAt)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/items/%d", ts.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &items))
	require.Empty(t, items)
}

func TestItemValidation(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/users/alice/items", map[string]any{
		"value": 50.0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, "title and type are required")

	resp, _ = doJSON(t, http.MethodPatch, ts.URL+"/api/v1/items/not-a-number", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRewardEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/users/alice/rewards", map[string]any{
		"title": "Movie night", "cost": 30.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/rewards", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rewards []remote.Reward
	require.NoError(t, json.Unmarshal(body, &rewards))
	require.Len(t, rewards, 1)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/rewards/%d", ts.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestResetEndpoint(t *testing.T) {
	ts := newTestServer(t)

	_, _ = doJSON(t, http.MethodPost, ts.URL+"/api/v1/users/alice/items", map[string]any{
		"title": "a", "type": "TASK", "createdAt": 1,
	})
	_, _ = doJSON(t, http.MethodPost, ts.URL+"/api/v1/users/alice/rewards", map[string]any{
		"title": "r", "cost": 1.0,
	})

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/users/alice", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []remote.Item
	require.NoError(t, json.Unmarshal(body, &items))
	require.Empty(t, items)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/rewards", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rewards []remote.Reward
	require.NoError(t, json.Unmarshal(body, &rewards))
	require.Empty(t, rewards)

	// The reset settings row carries the engine defaults, not zero values.
	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/alice/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var set map[string]any
	require.NoError(t, json.Unmarshal(body, &set))
	require.Equal(t, engine.DefaultGoalTitle, set["goalTitle"])
	require.EqualValues(t, engine.DefaultGoalTarget, set["goalAmount"])
}
