package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		none    bool
		offline bool
		remote  bool
	}{
		{name: "no profile", user: "", none: true},
		{name: "offline sentinel", user: OfflineUserID, offline: true},
		{name: "remote user", user: "alice", remote: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := Resolve(tt.user)
			require.Equal(t, tt.user, id.UserID)
			require.Equal(t, tt.none, id.IsNone())
			require.Equal(t, tt.offline, id.IsOffline())
			require.Equal(t, tt.remote, id.Remote())
		})
	}
}
