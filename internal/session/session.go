// Package session resolves the active user scope. Identity issuing and
// credential handling live outside this program; we only record which stable
// identifier partitions the persisted state.
package session

// OfflineUserID is the sentinel scope for device-local usage without any
// remote identity. Its state is cached like any other scope but never
// mirrored.
const OfflineUserID = "offline_user"

type Identity struct {
	UserID string
}

// Resolve maps a configured user value to an identity. An empty value means
// no profile has been chosen yet, which the engine treats as having no
// active state at all.
func Resolve(user string) Identity {
	return Identity{UserID: user}
}

func (i Identity) IsNone() bool { return i.UserID == "" }

func (i Identity) IsOffline() bool { return i.UserID == OfflineUserID }

// Remote reports whether this identity mirrors to the shared store.
func (i Identity) Remote() bool { return !i.IsNone() && !i.IsOffline() }
