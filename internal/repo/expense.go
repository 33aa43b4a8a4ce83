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

// ExpenseRepo defines the persistence operations for shared expenses.
// Expenses are append-and-delete: there is no update, a wrong entry is
// deleted and re-added.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// ListByTripID returns all expenses for a trip ordered by created_at
	// ascending — the order they were recorded in.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)

	// Delete removes an expense by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no expense with that ID exists under that trip.
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

const expenseColumns = `
	id, trip_id, item, amount, category,
	creator_id, creator_name, creator_avatar, created_at`

func (r *pgExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (trip_id, item, amount, category, creator_id, creator_name, creator_avatar)
		VALUES (@trip_id, @item, @amount::numeric, @category, @creator_id, @creator_name, @creator_avatar)
		RETURNING ` + expenseColumns

	args := mergeArgs(pgx.NamedArgs{
		"trip_id":  expense.TripID,
		"item":     expense.Item,
		"amount":   expense.Amount.String(),
		"category": string(expense.Category),
	}, refArgs("creator", expense.Creator))

	result, err := scanExpense(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgExpenseRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: rows: %w", err)
	}

	return expenses, nil
}

func (r *pgExpenseRepo) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": expenseID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e             domain.Expense
		id, tripID    pgtype.UUID
		amount        pgtype.Numeric
		category      string
		creatorID     pgtype.UUID
		creatorName   pgtype.Text
		creatorAvatar pgtype.Text
	)

	err := s.Scan(
		&id, &tripID, &e.Item, &amount, &category,
		&creatorID, &creatorName, &creatorAvatar, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	e.Amount = numericToDecimal(amount)
	e.Category = domain.ExpenseCategory(category)
	e.Creator = scanRef(creatorID, creatorName, creatorAvatar)
	return e, nil
}
