package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryStop is a single planned stop on a trip. Stops carry their own
// status, moved freely by users; there is no ordering field beyond Date —
// the "Day N" label shown in the itinerary is derived from the stop's
// position in the (optionally filtered) list, not from elapsed calendar days.
type ItineraryStop struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Activity  string    `json:"activity,omitempty"`
	Date      time.Time `json:"date"`
	Status    Status    `json:"status"`
	Creator   UserRef   `json:"creator,omitzero"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusFilterAll is the identity filter for FilterStops.
const StatusFilterAll = "all"

// FilterStops returns the stops matching the given status filter, preserving
// order. The filter is a Status string or StatusFilterAll; unknown filters
// match nothing rather than everything, so a typo cannot silently widen a
// selection.
func FilterStops(stops []ItineraryStop, filter string) []ItineraryStop {
	if filter == StatusFilterAll || filter == "" {
		return stops
	}
	out := make([]ItineraryStop, 0, len(stops))
	for _, s := range stops {
		if string(s.Status) == filter {
			out = append(out, s)
		}
	}
	return out
}

// StopProgress computes trip-completion progress over a stop list.
func StopProgress(stops []ItineraryStop) Progress {
	done := 0
	for _, s := range stops {
		if s.Status == StatusCompleted {
			done++
		}
	}
	return progressOf(done, len(stops))
}
