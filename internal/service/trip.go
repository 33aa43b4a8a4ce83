package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// TripService implements the trip aggregate: trip CRUD, the owner-asserted
// status label, the budget, and the collaborator roster.
type TripService struct {
	trips         repo.TripRepo
	users         repo.UserRepo
	collaborators repo.CollaboratorRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, users repo.UserRepo, collaborators repo.CollaboratorRepo) *TripService {
	return &TripService{trips: trips, users: users, collaborators: collaborators}
}

// Create validates and persists a new trip owned by the acting user.
func (s *TripService) Create(ctx context.Context, trip domain.Trip, owner domain.UserRef) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.Status == "" {
		trip.Status = domain.StatusPlanning
	}

	result, err := s.trips.Create(ctx, trip, owner.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", repoErr(err))
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", repoErr(err))
	}
	return result, nil
}

// List returns all trips, most recent start date first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", repoErr(err))
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to trip metadata.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", repoErr(err))
	}
	return result, nil
}

// Delete removes a trip and, via database cascade, all its ledger records.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", repoErr(err))
	}
	return nil
}

// SetStatus moves the trip to the given status. The trip's status is a label
// the owner asserts about the trip as a whole — it is independent of stop
// statuses, and every transition between the three states is permitted.
func (s *TripService) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Trip, error) {
	if !status.Valid() {
		return domain.Trip{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetStatus: %w", repoErr(err))
	}

	trip.Status = status

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetStatus: %w", repoErr(err))
	}
	return result, nil
}

// SetBudget changes the trip budget. Zero clears the budget ("not set");
// negative amounts are rejected before any repo call.
func (s *TripService) SetBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.Trip, error) {
	if amount.IsNegative() {
		return domain.Trip{}, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetBudget: %w", repoErr(err))
	}

	trip.Budget = amount

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetBudget: %w", repoErr(err))
	}
	return result, nil
}

// ListCollaborators returns the trip roster.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error) {
	collaborators, err := s.collaborators.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListCollaborators: %w", repoErr(err))
	}
	if collaborators == nil {
		return []domain.Collaborator{}, nil
	}
	return collaborators, nil
}

// Invite adds a pending roster entry for the named user.
// Returns domain.ErrValidation for an unknown role, domain.ErrNotFound when
// the username does not resolve, and domain.ErrConflict when the user is the
// trip owner or already invited/joined. Acceptance happens elsewhere — the
// new entry stays pending until the invited user acts on it.
func (s *TripService) Invite(ctx context.Context, tripID uuid.UUID, username string, role domain.Role) (domain.Collaborator, error) {
	if !role.Valid() {
		return domain.Collaborator{}, fmt.Errorf("%w: role must be editor or viewer", domain.ErrValidation)
	}
	if strings.TrimSpace(username) == "" {
		return domain.Collaborator{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: %w", repoErr(err))
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: %w", repoErr(err))
	}
	if trip.Owner.ID == user.ID {
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: owner cannot be invited: %w", domain.ErrConflict)
	}

	_, err = s.collaborators.GetByUser(ctx, tripID, user.ID)
	switch {
	case err == nil:
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: already on roster: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: %w", repoErr(err))
	}

	result, err := s.collaborators.Create(ctx, domain.Collaborator{
		TripID: tripID,
		User:   user.Ref(),
		Role:   role,
		Status: domain.CollaboratorPending,
	})
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service.TripService.Invite: %w", repoErr(err))
	}
	return result, nil
}

// validateTrip enforces business rules common to both Create and Update.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if trip.Status != "" && !trip.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, trip.Status)
	}
	if trip.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return nil
}
