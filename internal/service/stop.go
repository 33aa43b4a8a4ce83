// Package service contains the business logic for the Rent-Tent API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations. Validation failures are caught before any repo call is
// made, so a rejected input never touches the persistence layer.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// StopService implements the itinerary stop ledger. It holds the trip repo
// as well because creating a stop requires verifying the parent trip exists.
type StopService struct {
	trips repo.TripRepo
	stops repo.StopRepo
}

// NewStopService constructs a StopService backed by the provided repos.
func NewStopService(trips repo.TripRepo, stops repo.StopRepo) *StopService {
	return &StopService{trips: trips, stops: stops}
}

// Create validates the stop, verifies the parent trip exists, then persists.
// New stops always start in planning unless the caller set a valid status.
// The creator snapshot is stamped from the acting user.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *StopService) Create(ctx context.Context, stop domain.ItineraryStop, actor domain.UserRef) (domain.ItineraryStop, error) {
	if err := validateStop(stop); err != nil {
		return domain.ItineraryStop{}, err
	}
	if _, err := s.trips.GetByID(ctx, stop.TripID); err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.Create: %w", repoErr(err))
	}
	if stop.Status == "" {
		stop.Status = domain.StatusPlanning
	}
	stop.Creator = actor

	result, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.Create: %w", repoErr(err))
	}
	return result, nil
}

// GetByID returns a single stop by ID, scoped to the given tripID.
func (s *StopService) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.ItineraryStop, error) {
	result, err := s.stops.GetByID(ctx, tripID, stopID)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.GetByID: %w", repoErr(err))
	}
	return result, nil
}

// ListByTripID returns all stops for a trip in itinerary order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error) {
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", repoErr(err))
	}
	if stops == nil {
		return []domain.ItineraryStop{}, nil
	}
	return stops, nil
}

// Update validates and persists changes to an existing stop.
func (s *StopService) Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	if err := validateStop(stop); err != nil {
		return domain.ItineraryStop{}, err
	}
	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.Update: %w", repoErr(err))
	}
	return result, nil
}

// SetStatus moves a stop to the given status. Any status may move to any
// other — progress marking and mistake correction use the same path — and
// no other field is touched. Setting the current status again is a no-op
// write with the same observable result.
func (s *StopService) SetStatus(ctx context.Context, tripID, stopID uuid.UUID, status domain.Status) (domain.ItineraryStop, error) {
	if !status.Valid() {
		return domain.ItineraryStop{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	stop, err := s.stops.GetByID(ctx, tripID, stopID)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.SetStatus: %w", repoErr(err))
	}

	stop.Status = status

	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.StopService.SetStatus: %w", repoErr(err))
	}
	return result, nil
}

// Delete removes a stop by ID, scoped to the given tripID. Irreversible;
// the confirmation prompt is the caller's responsibility.
func (s *StopService) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	if err := s.stops.Delete(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", repoErr(err))
	}
	return nil
}

// validateStop enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Date must be set.
//   - Status, when set, must be a known value.
func validateStop(stop domain.ItineraryStop) error {
	if strings.TrimSpace(stop.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if stop.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if stop.Status != "" && !stop.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, stop.Status)
	}
	return nil
}
