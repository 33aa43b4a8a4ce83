// Package repo contains all database access for the Rent-Tent API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip owned by ownerID and returns the persisted
	// record (with DB-generated id and timestamps populated).
	Create(ctx context.Context, trip domain.Trip, ownerID uuid.UUID) (domain.Trip, error)

	// GetByID retrieves a single trip with its owner profile joined in.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by start_date descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Child records (stops, expenses, packing
	// items, roster entries) cascade at the database level.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `
	t.id, t.title, t.destination, t.country, t.start_date, t.end_date,
	t.status, t.budget, t.created_at, t.updated_at,
	u.id, u.username, u.name, u.avatar_url`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip, ownerID uuid.UUID) (domain.Trip, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO trips (title, destination, country, start_date, end_date, status, budget, owner_id)
			VALUES (@title, @destination, @country, @start_date, @end_date, @status, @budget::numeric, @owner_id)
			RETURNING *
		)
		SELECT ` + tripColumns + `
		FROM inserted t
		JOIN users u ON u.id = t.owner_id`

	args := pgx.NamedArgs{
		"title":       trip.Title,
		"destination": trip.Destination,
		"country":     trip.Country,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"status":      string(trip.Status),
		"budget":      trip.Budget.String(),
		"owner_id":    ownerID,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips t
		JOIN users u ON u.id = t.owner_id
		WHERE t.id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips t
		JOIN users u ON u.id = t.owner_id
		ORDER BY t.start_date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		WITH updated AS (
			UPDATE trips
			SET title       = @title,
			    destination = @destination,
			    country     = @country,
			    start_date  = @start_date,
			    end_date    = @end_date,
			    status      = @status,
			    budget      = @budget::numeric,
			    updated_at  = now()
			WHERE id = @id
			RETURNING *
		)
		SELECT ` + tripColumns + `
		FROM updated t
		JOIN users u ON u.id = t.owner_id`

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"title":       trip.Title,
		"destination": trip.Destination,
		"country":     trip.Country,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"status":      string(trip.Status),
		"budget":      trip.Budget.String(),
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a trips+users join row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t          domain.Trip
		id, oid    pgtype.UUID
		startDate  pgtype.Date
		endDate    pgtype.Date
		status     string
		budget     pgtype.Numeric
		ownerAvatar pgtype.Text
	)

	err := s.Scan(
		&id, &t.Title, &t.Destination, &t.Country, &startDate, &endDate,
		&status, &budget, &t.CreatedAt, &t.UpdatedAt,
		&oid, &t.Owner.Username, &t.Owner.Name, &ownerAvatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time
	t.Status = domain.Status(status)
	t.Budget = numericToDecimal(budget)
	t.Owner.ID = uuid.UUID(oid.Bytes)
	t.Owner.AvatarURL = ownerAvatar.String

	return t, nil
}

// numericToDecimal converts a Postgres NUMERIC into a decimal.Decimal.
// NULL maps to zero, which doubles as the "no budget set" sentinel.
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// refArgs flattens an optional identity snapshot into named args.
// An unknown ref stores NULL for the id and empty strings for the snapshot.
func refArgs(prefix string, ref domain.UserRef) pgx.NamedArgs {
	args := pgx.NamedArgs{
		prefix + "_id":     nil,
		prefix + "_name":   ref.Name,
		prefix + "_avatar": ref.AvatarURL,
	}
	if ref.Known() {
		args[prefix+"_id"] = ref.ID
	}
	return args
}

// scanRef rebuilds a UserRef from nullable snapshot columns.
func scanRef(id pgtype.UUID, name, avatar pgtype.Text) domain.UserRef {
	var ref domain.UserRef
	if id.Valid {
		ref.ID = uuid.UUID(id.Bytes)
	}
	ref.Name = name.String
	ref.AvatarURL = avatar.String
	return ref
}

// mergeArgs combines named-arg maps; later maps win on key collisions.
func mergeArgs(maps ...pgx.NamedArgs) pgx.NamedArgs {
	out := pgx.NamedArgs{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
