// Package domain contains the core data types and pure aggregate math for
// the Rent-Tent trip planner. This package has no persistence or HTTP
// dependencies and is imported by every other internal package (repo,
// service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle label shared by trips and itinerary stops.
// It is a manually-asserted label, not a derived workflow state: any value
// may transition to any other value, including "backwards", because users
// legitimately correct mistakes. A trip's status is independent of the
// statuses of its stops.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusTraveling Status = "traveling"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the three known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusTraveling, StatusCompleted:
		return true
	}
	return false
}

// Trip is the top-level aggregate: stops, expenses, and packing items all
// belong to a trip. The owner is the trip's creator and is never duplicated
// into the collaborator roster.
type Trip struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Country     string          `json:"country,omitempty"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      Status          `json:"status"`
	Budget      decimal.Decimal `json:"budget"` // zero means no budget set
	Owner       UserRef         `json:"owner"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasBudget reports whether a budget has been set for the trip.
// Zero is the "unset" sentinel: no utilization or warning is computed for it.
func (t Trip) HasBudget() bool {
	return t.Budget.IsPositive()
}
