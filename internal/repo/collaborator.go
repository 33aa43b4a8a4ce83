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

// CollaboratorRepo defines persistence for the trip roster.
// Roster rows reference live user profiles — the join always returns the
// user's current username and avatar, never a snapshot.
type CollaboratorRepo interface {
	// Create inserts a roster entry. The entry starts in whatever status the
	// caller sets (invites start pending).
	Create(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error)

	// GetByUser retrieves the roster entry for a user on a trip.
	// Returns domain.ErrNotFound if the user is not on the roster.
	GetByUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Collaborator, error)

	// ListByTripID returns all roster entries for a trip, accepted first,
	// then by invite time ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error)

	// Delete removes a user from the roster.
	// Returns domain.ErrNotFound if the user is not on the roster.
	Delete(ctx context.Context, tripID, userID uuid.UUID) error
}

// pgCollaboratorRepo is the Postgres implementation of CollaboratorRepo.
type pgCollaboratorRepo struct {
	db db
}

// NewCollaboratorRepo constructs a CollaboratorRepo backed by the provided db.
func NewCollaboratorRepo(db db) CollaboratorRepo {
	return &pgCollaboratorRepo{db: db}
}

const collaboratorColumns = `
	c.trip_id, c.role, c.status, c.invited_at,
	u.id, u.username, u.name, u.avatar_url`

func (r *pgCollaboratorRepo) Create(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO trip_collaborators (trip_id, user_id, role, status)
			VALUES (@trip_id, @user_id, @role, @status)
			RETURNING *
		)
		SELECT ` + collaboratorColumns + `
		FROM inserted c
		JOIN users u ON u.id = c.user_id`

	args := pgx.NamedArgs{
		"trip_id": c.TripID,
		"user_id": c.User.ID,
		"role":    string(c.Role),
		"status":  string(c.Status),
	}

	result, err := scanCollaborator(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("repo.CollaboratorRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCollaboratorRepo) GetByUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Collaborator, error) {
	const q = `
		SELECT ` + collaboratorColumns + `
		FROM trip_collaborators c
		JOIN users u ON u.id = c.user_id
		WHERE c.trip_id = @trip_id AND c.user_id = @user_id`

	args := pgx.NamedArgs{"trip_id": tripID, "user_id": userID}

	result, err := scanCollaborator(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("repo.CollaboratorRepo.GetByUser: %w", err)
	}
	return result, nil
}

func (r *pgCollaboratorRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error) {
	const q = `
		SELECT ` + collaboratorColumns + `
		FROM trip_collaborators c
		JOIN users u ON u.id = c.user_id
		WHERE c.trip_id = @trip_id
		ORDER BY c.status ASC, c.invited_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.CollaboratorRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var collaborators []domain.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CollaboratorRepo.ListByTripID: scan: %w", err)
		}
		collaborators = append(collaborators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CollaboratorRepo.ListByTripID: rows: %w", err)
	}

	return collaborators, nil
}

func (r *pgCollaboratorRepo) Delete(ctx context.Context, tripID, userID uuid.UUID) error {
	const q = `DELETE FROM trip_collaborators WHERE trip_id = @trip_id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.CollaboratorRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CollaboratorRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCollaborator(s scanner) (domain.Collaborator, error) {
	var (
		c            domain.Collaborator
		tripID, uid  pgtype.UUID
		role, status string
		avatar       pgtype.Text
	)

	err := s.Scan(
		&tripID, &role, &status, &c.InvitedAt,
		&uid, &c.User.Username, &c.User.Name, &avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Collaborator{}, domain.ErrNotFound
		}
		return domain.Collaborator{}, err
	}

	c.TripID = uuid.UUID(tripID.Bytes)
	c.Role = domain.Role(role)
	c.Status = domain.CollaboratorStatus(status)
	c.User.ID = uuid.UUID(uid.Bytes)
	c.User.AvatarURL = avatar.String
	return c, nil
}
