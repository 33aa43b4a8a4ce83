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

// StopRepo defines the persistence operations for itinerary stops.
// All write and single-read operations are scoped by tripID to enforce ownership.
type StopRepo interface {
	// Create inserts a new stop and returns the persisted record.
	Create(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)

	// GetByID retrieves a single stop, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.ItineraryStop, error)

	// ListByTripID returns all stops for a trip ordered by date ascending,
	// insertion order breaking ties. This is the itinerary's display order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error)

	// Update overwrites the mutable fields of a stop, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)

	// Delete removes a stop by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// pgStopRepo is the Postgres implementation of StopRepo.
type pgStopRepo struct {
	db db
}

// NewStopRepo constructs a StopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStopRepo(db db) StopRepo {
	return &pgStopRepo{db: db}
}

const stopColumns = `
	id, trip_id, name, activity, date, status,
	creator_id, creator_name, creator_avatar, created_at, updated_at`

func (r *pgStopRepo) Create(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	const q = `
		INSERT INTO itinerary_stops (trip_id, name, activity, date, status, creator_id, creator_name, creator_avatar)
		VALUES (@trip_id, @name, @activity, @date, @status, @creator_id, @creator_name, @creator_avatar)
		RETURNING ` + stopColumns

	args := mergeArgs(pgx.NamedArgs{
		"trip_id":  stop.TripID,
		"name":     stop.Name,
		"activity": stop.Activity,
		"date":     stop.Date,
		"status":   string(stop.Status),
	}, refArgs("creator", stop.Creator))

	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.ItineraryStop, error) {
	const q = `
		SELECT ` + stopColumns + `
		FROM itinerary_stops
		WHERE id = @id AND trip_id = @trip_id`

	args := pgx.NamedArgs{"id": stopID, "trip_id": tripID}

	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error) {
	const q = `
		SELECT ` + stopColumns + `
		FROM itinerary_stops
		WHERE trip_id = @trip_id
		ORDER BY date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var stops []domain.ItineraryStop
	for rows.Next() {
		s, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StopRepo.ListByTripID: scan: %w", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: rows: %w", err)
	}

	return stops, nil
}

func (r *pgStopRepo) Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	const q = `
		UPDATE itinerary_stops
		SET name       = @name,
		    activity   = @activity,
		    date       = @date,
		    status     = @status,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"id":       stop.ID,
		"trip_id":  stop.TripID,
		"name":     stop.Name,
		"activity": stop.Activity,
		"date":     stop.Date,
		"status":   string(stop.Status),
	}

	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("repo.StopRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	const q = `DELETE FROM itinerary_stops WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanStop(s scanner) (domain.ItineraryStop, error) {
	var (
		stop          domain.ItineraryStop
		id, tripID    pgtype.UUID
		date          pgtype.Date
		status        string
		creatorID     pgtype.UUID
		creatorName   pgtype.Text
		creatorAvatar pgtype.Text
	)

	err := s.Scan(
		&id, &tripID, &stop.Name, &stop.Activity, &date, &status,
		&creatorID, &creatorName, &creatorAvatar, &stop.CreatedAt, &stop.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryStop{}, domain.ErrNotFound
		}
		return domain.ItineraryStop{}, err
	}

	stop.ID = uuid.UUID(id.Bytes)
	stop.TripID = uuid.UUID(tripID.Bytes)
	stop.Date = date.Time
	stop.Status = domain.Status(status)
	stop.Creator = scanRef(creatorID, creatorName, creatorAvatar)
	return stop, nil
}
