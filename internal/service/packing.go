package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// PackingService implements the shared packing-list ledger.
type PackingService struct {
	trips repo.TripRepo
	items repo.PackingRepo
}

// NewPackingService constructs a PackingService backed by the provided repos.
func NewPackingService(trips repo.TripRepo, items repo.PackingRepo) *PackingService {
	return &PackingService{trips: trips, items: items}
}

// Create validates and persists a new packing item. A missing quantity
// defaults to 1; out-of-range quantities are clamped to [1,99] rather than
// rejected on create. The creator snapshot is stamped from the acting user.
func (s *PackingService) Create(ctx context.Context, item domain.PackingItem, actor domain.UserRef) (domain.PackingItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return domain.PackingItem{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := s.trips.GetByID(ctx, item.TripID); err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Create: %w", repoErr(err))
	}

	item.Quantity = domain.ClampQuantity(item.Quantity)
	if item.Category == "" {
		item.Category = domain.PackingOther
	}
	item.IsPacked = false
	item.Creator = actor

	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Create: %w", repoErr(err))
	}
	return result, nil
}

// ListByTripID returns all packing items for a trip in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PackingService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.ListByTripID: %w", repoErr(err))
	}
	if items == nil {
		return []domain.PackingItem{}, nil
	}
	return items, nil
}

// Toggle flips the packed flag of an item. Marking an item packed stamps the
// acting user as the packer; unpacking leaves the old packer snapshot in
// place — it simply stops being displayed while the item is unpacked.
func (s *PackingService) Toggle(ctx context.Context, tripID, itemID uuid.UUID, actor domain.UserRef) (domain.PackingItem, error) {
	item, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Toggle: %w", repoErr(err))
	}

	item.IsPacked = !item.IsPacked
	if item.IsPacked {
		item.Packer = actor
	}

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Toggle: %w", repoErr(err))
	}
	return result, nil
}

// UpdateQuantity changes an item's quantity. Values below 1 are rejected as
// a validation error before any repo call — the stored quantity is left
// unchanged. Values above 99 clamp to 99.
func (s *PackingService) UpdateQuantity(ctx context.Context, tripID, itemID uuid.UUID, quantity int) (domain.PackingItem, error) {
	if quantity < domain.MinQuantity {
		return domain.PackingItem{}, fmt.Errorf("%w: quantity must be at least %d", domain.ErrValidation, domain.MinQuantity)
	}

	item, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.UpdateQuantity: %w", repoErr(err))
	}

	item.Quantity = domain.ClampQuantity(quantity)

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.UpdateQuantity: %w", repoErr(err))
	}
	return result, nil
}

// Delete removes an item by ID, scoped to the given tripID. Irreversible;
// the confirmation prompt is the caller's responsibility.
func (s *PackingService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", repoErr(err))
	}
	return nil
}
