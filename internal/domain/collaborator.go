package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the permission level of a collaborator on a trip.
// The owner is not a roster role: ownership lives on the trip record itself,
// so there is exactly one owner and the roster only ever holds editors and
// viewers.
type Role string

const (
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is an invitable role.
func (r Role) Valid() bool {
	return r == RoleEditor || r == RoleViewer
}

// CollaboratorStatus tracks whether an invited user has joined the trip.
type CollaboratorStatus string

const (
	CollaboratorPending  CollaboratorStatus = "pending"
	CollaboratorAccepted CollaboratorStatus = "accepted"
)

// Collaborator is a roster entry on a trip. Only accepted entries count
// toward team displays and spending attribution; pending invites are shown
// separately and never resolve identities.
type Collaborator struct {
	TripID    uuid.UUID          `json:"trip_id"`
	User      UserRef            `json:"user"`
	Role      Role               `json:"role"`
	Status    CollaboratorStatus `json:"status"`
	InvitedAt time.Time          `json:"invited_at"`
}

// RosterIndex builds a lookup of the currently-known trip members: the owner
// plus every accepted collaborator, keyed by user ID. Pending invites are
// excluded on purpose — they have not joined and must not absorb attribution.
func RosterIndex(owner UserRef, collaborators []Collaborator) map[uuid.UUID]UserRef {
	index := make(map[uuid.UUID]UserRef, len(collaborators)+1)
	if owner.Known() {
		index[owner.ID] = owner
	}
	for _, c := range collaborators {
		if c.Status == CollaboratorAccepted && c.User.Known() {
			index[c.User.ID] = c.User
		}
	}
	return index
}

// ResolveMember returns the display identity for a record's embedded creator
// or packer reference. The live roster profile wins when the user is still on
// the trip (their avatar or username may have changed since the record was
// written); the embedded snapshot is the fallback for users who have since
// left the trip.
func ResolveMember(roster map[uuid.UUID]UserRef, embedded UserRef) UserRef {
	if !embedded.Known() {
		return embedded
	}
	if current, ok := roster[embedded.ID]; ok {
		return current
	}
	return embedded
}
