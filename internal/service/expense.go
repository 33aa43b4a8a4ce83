package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// ExpenseService implements the shared expense ledger.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create validates and persists a new expense. The amount must be positive
// and the item label non-empty; both are checked before any repo call so an
// invalid expense never generates network traffic. The creator snapshot is
// stamped from the acting user.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense, actor domain.UserRef) (domain.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}
	if _, err := s.trips.GetByID(ctx, expense.TripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", repoErr(err))
	}
	expense.Creator = actor

	result, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", repoErr(err))
	}
	return result, nil
}

// ListByTripID returns all expenses for a trip in recorded order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTripID: %w", repoErr(err))
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// Delete removes an expense by ID, scoped to the given tripID. Irreversible;
// the confirmation prompt is the caller's responsibility.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	if err := s.expenses.Delete(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", repoErr(err))
	}
	return nil
}

// validateExpense enforces the expense business rules.
func validateExpense(expense domain.Expense) error {
	if strings.TrimSpace(expense.Item) == "" {
		return fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}
	if !expense.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, expense.Category)
	}
	return nil
}
