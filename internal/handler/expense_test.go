package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

func expenseFixture(tripID uuid.UUID) domain.Expense {
	return domain.Expense{
		ID:        uuid.New(),
		TripID:    tripID,
		Item:      "Bus tickets",
		Amount:    decimal.RequireFromString("42.50"),
		Category:  domain.ExpenseTransportation,
		CreatedAt: time.Now().UTC(),
	}
}

// ---- POST /trips/{tripID}/expenses --------------------------------------------

func TestCreateExpense_201(t *testing.T) {
	tripID := uuid.New()
	fixture := expenseFixture(tripID)
	expenses := &mockExpenseServicer{
		create: func(_ context.Context, e domain.Expense, _ domain.UserRef) (domain.Expense, error) {
			assert.Equal(t, tripID, e.TripID)
			assert.True(t, e.Amount.Equal(decimal.RequireFromString("42.50")))
			assert.Equal(t, domain.ExpenseTransportation, e.Category)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"item":     "Bus tickets",
		"amount":   "42.50",
		"category": "transportation",
	})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/trips/%s/expenses", tripID), body)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

// Amounts also arrive as JSON numbers; decimal accepts both encodings.
func TestCreateExpense_201_NumericAmount(t *testing.T) {
	tripID := uuid.New()
	expenses := &mockExpenseServicer{
		create: func(_ context.Context, e domain.Expense, _ domain.UserRef) (domain.Expense, error) {
			assert.True(t, e.Amount.Equal(decimal.RequireFromString("18.5")))
			return e, nil
		},
	}

	body := jsonBody(t, map[string]any{"item": "Dinner", "amount": 18.5, "category": "food"})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/trips/%s/expenses", tripID), body)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateExpense_422_NonPositiveAmount(t *testing.T) {
	expenses := &mockExpenseServicer{
		create: func(_ context.Context, _ domain.Expense, _ domain.UserRef) (domain.Expense, error) {
			return domain.Expense{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"item": "Dinner", "amount": "-3", "category": "food"})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/trips/%s/expenses", uuid.New()), body)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripID}/expenses ---------------------------------------------

func TestListExpenses_200(t *testing.T) {
	tripID := uuid.New()
	expenses := &mockExpenseServicer{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Expense, error) {
			assert.Equal(t, tripID, id)
			return []domain.Expense{expenseFixture(tripID)}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/trips/%s/expenses", tripID), nil)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

// ---- DELETE /trips/{tripID}/expenses/{expenseID} ---------------------------------

func TestDeleteExpense_204(t *testing.T) {
	tripID := uuid.New()
	expenseID := uuid.New()
	expenses := &mockExpenseServicer{
		delete: func(_ context.Context, gotTripID, gotExpenseID uuid.UUID) error {
			assert.Equal(t, tripID, gotTripID)
			assert.Equal(t, expenseID, gotExpenseID)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/trips/%s/expenses/%s", tripID, expenseID), nil)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteExpense_404(t *testing.T) {
	expenses := &mockExpenseServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/trips/%s/expenses/%s", uuid.New(), uuid.New()), nil)
	rec := httptest.NewRecorder()

	newRouter(nil, nil, expenses, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
