package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/handler"
	"github.com/ramoniswack/rent-tent-server/internal/service"
)

// Test doubles for the handler-side service interfaces. Set only the method
// fields your test needs; unset methods panic so an unexpected call is loud.

type mockTripServicer struct {
	create            func(ctx context.Context, trip domain.Trip, owner domain.UserRef) (domain.Trip, error)
	getByID           func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list              func(ctx context.Context) ([]domain.Trip, error)
	update            func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete            func(ctx context.Context, id uuid.UUID) error
	setStatus         func(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Trip, error)
	setBudget         func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.Trip, error)
	listCollaborators func(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error)
	invite            func(ctx context.Context, tripID uuid.UUID, username string, role domain.Role) (domain.Collaborator, error)
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip, owner domain.UserRef) (domain.Trip, error) {
	return m.create(ctx, trip, owner)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Trip, error) {
	return m.setStatus(ctx, id, status)
}
func (m *mockTripServicer) SetBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.Trip, error) {
	return m.setBudget(ctx, id, amount)
}
func (m *mockTripServicer) ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error) {
	return m.listCollaborators(ctx, tripID)
}
func (m *mockTripServicer) Invite(ctx context.Context, tripID uuid.UUID, username string, role domain.Role) (domain.Collaborator, error) {
	return m.invite(ctx, tripID, username, role)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockStopServicer struct {
	create       func(ctx context.Context, stop domain.ItineraryStop, actor domain.UserRef) (domain.ItineraryStop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error)
	update       func(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	setStatus    func(ctx context.Context, tripID, stopID uuid.UUID, status domain.Status) (domain.ItineraryStop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopServicer) Create(ctx context.Context, stop domain.ItineraryStop, actor domain.UserRef) (domain.ItineraryStop, error) {
	return m.create(ctx, stop, actor)
}
func (m *mockStopServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopServicer) Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	return m.update(ctx, stop)
}
func (m *mockStopServicer) SetStatus(ctx context.Context, tripID, stopID uuid.UUID, status domain.Status) (domain.ItineraryStop, error) {
	return m.setStatus(ctx, tripID, stopID, status)
}
func (m *mockStopServicer) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}

var _ handler.StopServicer = (*mockStopServicer)(nil)

type mockExpenseServicer struct {
	create       func(ctx context.Context, expense domain.Expense, actor domain.UserRef) (domain.Expense, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	delete       func(ctx context.Context, tripID, expenseID uuid.UUID) error
}

func (m *mockExpenseServicer) Create(ctx context.Context, expense domain.Expense, actor domain.UserRef) (domain.Expense, error) {
	return m.create(ctx, expense, actor)
}
func (m *mockExpenseServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	return m.delete(ctx, tripID, expenseID)
}

var _ handler.ExpenseServicer = (*mockExpenseServicer)(nil)

type mockPackingServicer struct {
	create         func(ctx context.Context, item domain.PackingItem, actor domain.UserRef) (domain.PackingItem, error)
	listByTripID   func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	toggle         func(ctx context.Context, tripID, itemID uuid.UUID, actor domain.UserRef) (domain.PackingItem, error)
	updateQuantity func(ctx context.Context, tripID, itemID uuid.UUID, quantity int) (domain.PackingItem, error)
	delete         func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockPackingServicer) Create(ctx context.Context, item domain.PackingItem, actor domain.UserRef) (domain.PackingItem, error) {
	return m.create(ctx, item, actor)
}
func (m *mockPackingServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockPackingServicer) Toggle(ctx context.Context, tripID, itemID uuid.UUID, actor domain.UserRef) (domain.PackingItem, error) {
	return m.toggle(ctx, tripID, itemID, actor)
}
func (m *mockPackingServicer) UpdateQuantity(ctx context.Context, tripID, itemID uuid.UUID, quantity int) (domain.PackingItem, error) {
	return m.updateQuantity(ctx, tripID, itemID, quantity)
}
func (m *mockPackingServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

type mockDetailLoader struct {
	load func(ctx context.Context, tripID uuid.UUID) (service.TripDetail, error)
}

func (m *mockDetailLoader) Load(ctx context.Context, tripID uuid.UUID) (service.TripDetail, error) {
	return m.load(ctx, tripID)
}

var _ handler.DetailLoader = (*mockDetailLoader)(nil)

// newRouter wires a Server from whichever mocks a test supplies; nil slots
// are fine as long as the exercised route never touches them. The export
// service is the real one — it is pure.
func newRouter(
	trips handler.TripServicer,
	stops handler.StopServicer,
	expenses handler.ExpenseServicer,
	packing handler.PackingServicer,
	detail handler.DetailLoader,
) http.Handler {
	return handler.NewServer(trips, stops, expenses, packing, detail, service.NewExportService()).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
