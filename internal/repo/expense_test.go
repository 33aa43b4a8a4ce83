package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

func TestExpenseRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	creator := createUser(t, tx, "maya")
	r := repo.NewExpenseRepo(tx)

	got, err := r.Create(ctx, domain.Expense{
		TripID:   trip.ID,
		Item:     "Teahouse night",
		Amount:   decimal.RequireFromString("12.50"),
		Category: domain.ExpenseAccommodation,
		Creator:  creator.Ref(),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Teahouse night", got.Item)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("12.50")), "amount round-trips through NUMERIC: %s", got.Amount)
	assert.Equal(t, domain.ExpenseAccommodation, got.Category)
	assert.Equal(t, creator.ID, got.Creator.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestExpenseRepo_ListByTripID_OrderedByCreation(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewExpenseRepo(tx)

	for _, item := range []string{"Bus ticket", "Dal bhat", "Trekking permit"} {
		_, err := r.Create(ctx, domain.Expense{
			TripID:   trip.ID,
			Item:     item,
			Amount:   decimal.RequireFromString("5"),
			Category: domain.ExpenseOther,
		})
		require.NoError(t, err)
	}

	expenses, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "Bus ticket", expenses[0].Item)
	assert.Equal(t, "Dal bhat", expenses[1].Item)
	assert.Equal(t, "Trekking permit", expenses[2].Item)
}

func TestExpenseRepo_ListByTripID_EmptyTrip(t *testing.T) {
	tx := newTestTx(t)
	trip := createTrip(t, tx)

	expenses, err := repo.NewExpenseRepo(tx).ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewExpenseRepo(tx)

	created, err := r.Create(ctx, domain.Expense{
		TripID:   trip.ID,
		Item:     "Souvenir",
		Amount:   decimal.RequireFromString("30"),
		Category: domain.ExpenseShopping,
	})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, trip.ID, created.ID))

	expenses, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseRepo_Delete_WrongTrip(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewExpenseRepo(tx)

	created, err := r.Create(ctx, domain.Expense{
		TripID:   trip.ID,
		Item:     "Lunch",
		Amount:   decimal.RequireFromString("8"),
		Category: domain.ExpenseFood,
	})
	require.NoError(t, err)

	err = r.Delete(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "delete is scoped to the owning trip")
}
