package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

// PackingRepo defines the persistence operations for packing-list items.
type PackingRepo interface {
	// Create inserts a new packing item and returns the persisted record.
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// GetByID retrieves a single item, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error)

	// ListByTripID returns all packing items for a trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)

	// Update overwrites the mutable fields of an item, including the packed
	// flag and packer snapshot. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// Delete removes an item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgPackingRepo is the Postgres implementation of PackingRepo.
type pgPackingRepo struct {
	db db
}

// NewPackingRepo constructs a PackingRepo backed by the provided db connection.
func NewPackingRepo(db db) PackingRepo {
	return &pgPackingRepo{db: db}
}

const packingColumns = `
	id, trip_id, name, notes, quantity, category, is_packed,
	creator_id, creator_name, creator_avatar,
	packer_id, packer_name, packer_avatar, created_at, updated_at`

func (r *pgPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	const q = `
		INSERT INTO packing_items
			(trip_id, name, notes, quantity, category, is_packed,
			 creator_id, creator_name, creator_avatar, packer_id, packer_name, packer_avatar)
		VALUES
			(@trip_id, @name, @notes, @quantity, @category, @is_packed,
			 @creator_id, @creator_name, @creator_avatar, @packer_id, @packer_name, @packer_avatar)
		RETURNING ` + packingColumns

	args := mergeArgs(pgx.NamedArgs{
		"trip_id":   item.TripID,
		"name":      item.Name,
		"notes":     item.Notes,
		"quantity":  item.Quantity,
		"category":  string(item.Category),
		"is_packed": item.IsPacked,
	}, refArgs("creator", item.Creator), refArgs("packer", item.Packer))

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error) {
	const q = `
		SELECT ` + packingColumns + `
		FROM packing_items
		WHERE id = @id AND trip_id = @trip_id`

	args := pgx.NamedArgs{"id": itemID, "trip_id": tripID}

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	const q = `
		SELECT ` + packingColumns + `
		FROM packing_items
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var items []domain.PackingItem
	for rows.Next() {
		item, err := scanPackingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTripID: rows: %w", err)
	}

	return items, nil
}

func (r *pgPackingRepo) Update(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	const q = `
		UPDATE packing_items
		SET name          = @name,
		    notes         = @notes,
		    quantity      = @quantity,
		    category      = @category,
		    is_packed     = @is_packed,
		    packer_id     = @packer_id,
		    packer_name   = @packer_name,
		    packer_avatar = @packer_avatar,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + packingColumns

	args := mergeArgs(pgx.NamedArgs{
		"id":        item.ID,
		"trip_id":   item.TripID,
		"name":      item.Name,
		"notes":     item.Notes,
		"quantity":  item.Quantity,
		"category":  string(item.Category),
		"is_packed": item.IsPacked,
	}, refArgs("packer", item.Packer))

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		item                                 domain.PackingItem
		id, tripID                           pgtype.UUID
		category                             string
		creatorID, packerID                  pgtype.UUID
		creatorName, creatorAvatar           pgtype.Text
		packerName, packerAvatar             pgtype.Text
	)

	err := s.Scan(
		&id, &tripID, &item.Name, &item.Notes, &item.Quantity, &category, &item.IsPacked,
		&creatorID, &creatorName, &creatorAvatar,
		&packerID, &packerName, &packerAvatar, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingItem{}, domain.ErrNotFound
		}
		return domain.PackingItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	item.Category = domain.PackingCategory(category)
	item.Creator = scanRef(creatorID, creatorName, creatorAvatar)
	item.Packer = scanRef(packerID, packerName, packerAvatar)
	return item, nil
}
