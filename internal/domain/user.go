package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record resolved from the identity provider.
// Only the fields the trip core needs for attribution are carried here;
// authentication itself is handled upstream.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Ref returns the identity snapshot embedded onto records this user creates.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

// UserRef is a lightweight identity reference stamped onto trip records
// (expense creator, packing-item packer, and so on). It is a snapshot taken
// at write time: the live roster entry, when the user is still on the trip,
// takes precedence over these fields at display time (see ResolveMember).
type UserRef struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username,omitempty"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// Known reports whether the reference points at an actual user.
// A zero UUID means the record has no recorded creator/packer.
func (r UserRef) Known() bool {
	return r.ID != uuid.Nil
}

// Display returns the best human-readable name for the reference.
func (r UserRef) Display() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Username
}
