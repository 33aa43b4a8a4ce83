// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server; they are split into resource-specific
// files (trip.go, stop.go, etc.) but share the same struct so they can access
// its dependencies. Routes assembles the full chi router.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip, owner domain.UserRef) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Trip, error)
	SetBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.Trip, error)
	ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]domain.Collaborator, error)
	Invite(ctx context.Context, tripID uuid.UUID, username string, role domain.Role) (domain.Collaborator, error)
}

// StopServicer defines the itinerary operations the stop handlers depend on.
type StopServicer interface {
	Create(ctx context.Context, stop domain.ItineraryStop, actor domain.UserRef) (domain.ItineraryStop, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryStop, error)
	Update(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	SetStatus(ctx context.Context, tripID, stopID uuid.UUID, status domain.Status) (domain.ItineraryStop, error)
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// ExpenseServicer defines the expense operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, expense domain.Expense, actor domain.UserRef) (domain.Expense, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error
}

// PackingServicer defines the checklist operations the packing handlers depend on.
type PackingServicer interface {
	Create(ctx context.Context, item domain.PackingItem, actor domain.UserRef) (domain.PackingItem, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)
	Toggle(ctx context.Context, tripID, itemID uuid.UUID, actor domain.UserRef) (domain.PackingItem, error)
	UpdateQuantity(ctx context.Context, tripID, itemID uuid.UUID, quantity int) (domain.PackingItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// DetailLoader assembles the full trip aggregate for the summary and export
// endpoints.
type DetailLoader interface {
	Load(ctx context.Context, tripID uuid.UUID) (service.TripDetail, error)
}

// Exporter builds the printable document view from an assembled detail.
type Exporter interface {
	Build(detail service.TripDetail, viewer domain.UserRef) domain.TripExport
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	trips    TripServicer
	stops    StopServicer
	expenses ExpenseServicer
	packing  PackingServicer
	detail   DetailLoader
	export   Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	stops StopServicer,
	expenses ExpenseServicer,
	packing PackingServicer,
	detail DetailLoader,
	export Exporter,
) *Server {
	return &Server{
		trips:    trips,
		stops:    stops,
		expenses: expenses,
		packing:  packing,
		detail:   detail,
		export:   export,
	}
}

// Routes mounts every endpoint on a fresh chi router. Middleware (request ID,
// logging, CORS, identity, body limits) is applied by the caller so tests can
// exercise routes without the full stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Patch("/status", s.SetTripStatus)
			r.Patch("/budget", s.SetTripBudget)
			r.Post("/invite", s.InviteCollaborator)
			r.Get("/summary", s.GetTripSummary)
			r.Get("/export", s.GetTripExport)

			r.Route("/stops", func(r chi.Router) {
				r.Get("/", s.ListStops)
				r.Post("/", s.CreateStop)
				r.Put("/{stopID}", s.UpdateStop)
				r.Patch("/{stopID}/status", s.SetStopStatus)
				r.Delete("/{stopID}", s.DeleteStop)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", s.ListExpenses)
				r.Post("/", s.CreateExpense)
				r.Delete("/{expenseID}", s.DeleteExpense)
			})

			r.Route("/packing", func(r chi.Router) {
				r.Get("/", s.ListPackingItems)
				r.Post("/", s.CreatePackingItem)
				r.Patch("/{itemID}/toggle", s.TogglePackingItem)
				r.Patch("/{itemID}/quantity", s.SetPackingQuantity)
				r.Delete("/{itemID}", s.DeletePackingItem)
			})
		})
	})

	return r
}
