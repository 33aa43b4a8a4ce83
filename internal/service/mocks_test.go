package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// Hand-written test doubles for every repo interface. Each method delegates
// to a func field when set; unset methods return zero values so tests only
// declare the calls they exercise.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip, ownerID uuid.UUID) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip, ownerID uuid.UUID) (domain.Trip, error) {
	if m.create != nil {
		return m.create(ctx, trip, ownerID)
	}
	return trip, nil
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return domain.Trip{ID: id}, nil
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if m.update != nil {
		return m.update(ctx, trip)
	}
	return trip, nil
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockStopRepo struct {
	create       func(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	getByID      func(ctx context.Context, tripID, stopID uuid.UUID) (domain.ItineraryStop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error)
	update       func(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	if m.create != nil {
		return m.create(ctx, stop)
	}
	return stop, nil
}
func (m *mockStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.ItineraryStop, error) {
	if m.getByID != nil {
		return m.getByID(ctx, tripID, stopID)
	}
	return domain.ItineraryStop{}, domain.ErrNotFound
}
func (m *mockStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error) {
	if m.listByTripID != nil {
		return m.listByTripID(ctx, tripID)
	}
	return nil, nil
}
func (m *mockStopRepo) Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	if m.update != nil {
		return m.update(ctx, stop)
	}
	return stop, nil
}
func (m *mockStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, tripID, stopID)
	}
	return nil
}

var _ repo.StopRepo = (*mockStopRepo)(nil)

type mockExpenseRepo struct {
	create       func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	delete       func(ctx context.Context, tripID, expenseID uuid.UUID) error

	createCalls int
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	m.createCalls++
	if m.create != nil {
		return m.create(ctx, expense)
	}
	return expense, nil
}
func (m *mockExpenseRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	if m.listByTripID != nil {
		return m.listByTripID(ctx, tripID)
	}
	return nil, nil
}
func (m *mockExpenseRepo) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, tripID, expenseID)
	}
	return nil
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

type mockPackingRepo struct {
	create       func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	getByID      func(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	update       func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	delete       func(ctx context.Context, tripID, itemID uuid.UUID) error

	updateCalls int
}

func (m *mockPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	if m.create != nil {
		return m.create(ctx, item)
	}
	return item, nil
}
func (m *mockPackingRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.PackingItem, error) {
	if m.getByID != nil {
		return m.getByID(ctx, tripID, itemID)
	}
	return domain.PackingItem{}, domain.ErrNotFound
}
func (m *mockPackingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	if m.listByTripID != nil {
		return m.listByTripID(ctx, tripID)
	}
	return nil, nil
}
func (m *mockPackingRepo) Update(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	m.updateCalls++
	if m.update != nil {
		return m.update(ctx, item)
	}
	return item, nil
}
func (m *mockPackingRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, tripID, itemID)
	}
	return nil
}

var _ repo.PackingRepo = (*mockPackingRepo)(nil)

type mockUserRepo struct {
	create        func(ctx context.Context, user domain.User) (domain.User, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByUsername func(ctx context.Context, username string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if m.create != nil {
		return m.create(ctx, user)
	}
	return user, nil
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return domain.User{}, domain.ErrNotFound
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	if m.getByUsername != nil {
		return m.getByUsername(ctx, username)
	}
	return domain.User{}, domain.ErrNotFound
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockCollaboratorRepo struct {
	create       func(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error)
	getByUser    func(ctx context.Context, tripID, userID uuid.UUID) (domain.Collaborator, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error)
	delete       func(ctx context.Context, tripID, userID uuid.UUID) error
}

func (m *mockCollaboratorRepo) Create(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	if m.create != nil {
		return m.create(ctx, c)
	}
	return c, nil
}
func (m *mockCollaboratorRepo) GetByUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Collaborator, error) {
	if m.getByUser != nil {
		return m.getByUser(ctx, tripID, userID)
	}
	return domain.Collaborator{}, domain.ErrNotFound
}
func (m *mockCollaboratorRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error) {
	if m.listByTripID != nil {
		return m.listByTripID(ctx, tripID)
	}
	return nil, nil
}
func (m *mockCollaboratorRepo) Delete(ctx context.Context, tripID, userID uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, tripID, userID)
	}
	return nil
}

var _ repo.CollaboratorRepo = (*mockCollaboratorRepo)(nil)
