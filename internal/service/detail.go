package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

// TripDetail is the fully-assembled trip aggregate: the trip record, its
// roster, and all three ledgers' records. All computed aggregates (totals,
// breakdowns, progress) are derived from this snapshot on demand and never
// stored alongside it.
type TripDetail struct {
	Trip          domain.Trip
	Collaborators []domain.Collaborator
	Stops         []domain.ItineraryStop
	Expenses      []domain.Expense
	Packing       []domain.PackingItem
}

// DetailLoader assembles TripDetail snapshots and remembers the most recent
// one. The trip record itself is mandatory — if it cannot be fetched the
// load fails — but each secondary list (roster, stops, expenses, packing)
// degrades independently to an empty list when its fetch fails, so a
// temporarily unavailable sub-resource never blanks the whole screen.
//
// Loads can be superseded: each call takes a monotonically increasing token,
// and a load that finishes after a newer one has started returns its result
// to its caller but is not installed as the current snapshot.
type DetailLoader struct {
	trips         repo.TripRepo
	collaborators repo.CollaboratorRepo
	stops         repo.StopRepo
	expenses      repo.ExpenseRepo
	packing       repo.PackingRepo
	log           *slog.Logger

	mu      sync.Mutex
	seq     uint64
	current *TripDetail
}

// NewDetailLoader constructs a DetailLoader backed by the provided repos.
func NewDetailLoader(
	trips repo.TripRepo,
	collaborators repo.CollaboratorRepo,
	stops repo.StopRepo,
	expenses repo.ExpenseRepo,
	packing repo.PackingRepo,
	log *slog.Logger,
) *DetailLoader {
	if log == nil {
		log = slog.Default()
	}
	return &DetailLoader{
		trips:         trips,
		collaborators: collaborators,
		stops:         stops,
		expenses:      expenses,
		packing:       packing,
		log:           log,
	}
}

// Load fetches the trip and its four record lists and returns the assembled
// detail. Returns domain.ErrNotFound when the trip does not exist and
// domain.ErrTransport when the trip fetch itself fails; list fetch failures
// only degrade that list to empty.
func (l *DetailLoader) Load(ctx context.Context, tripID uuid.UUID) (TripDetail, error) {
	l.mu.Lock()
	l.seq++
	token := l.seq
	l.mu.Unlock()

	trip, err := l.trips.GetByID(ctx, tripID)
	if err != nil {
		return TripDetail{}, fmt.Errorf("service.DetailLoader.Load: %w", repoErr(err))
	}

	detail := TripDetail{
		Trip:          trip,
		Collaborators: []domain.Collaborator{},
		Stops:         []domain.ItineraryStop{},
		Expenses:      []domain.Expense{},
		Packing:       []domain.PackingItem{},
	}

	// The four lists fetch concurrently. Failures degrade to empty lists, so
	// every goroutine returns nil and the group only coordinates completion.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		collaborators, err := l.collaborators.ListByTripID(gctx, tripID)
		if err != nil {
			l.log.WarnContext(gctx, "trip detail: roster unavailable", "trip_id", tripID, "error", err)
			return nil
		}
		if collaborators != nil {
			detail.Collaborators = collaborators
		}
		return nil
	})
	g.Go(func() error {
		stops, err := l.stops.ListByTripID(gctx, tripID)
		if err != nil {
			l.log.WarnContext(gctx, "trip detail: itinerary unavailable", "trip_id", tripID, "error", err)
			return nil
		}
		if stops != nil {
			detail.Stops = stops
		}
		return nil
	})
	g.Go(func() error {
		expenses, err := l.expenses.ListByTripID(gctx, tripID)
		if err != nil {
			l.log.WarnContext(gctx, "trip detail: expenses unavailable", "trip_id", tripID, "error", err)
			return nil
		}
		if expenses != nil {
			detail.Expenses = expenses
		}
		return nil
	})
	g.Go(func() error {
		items, err := l.packing.ListByTripID(gctx, tripID)
		if err != nil {
			l.log.WarnContext(gctx, "trip detail: packing list unavailable", "trip_id", tripID, "error", err)
			return nil
		}
		if items != nil {
			detail.Packing = items
		}
		return nil
	})
	_ = g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if token == l.seq {
		snapshot := detail
		l.current = &snapshot
	}
	// A stale load still returns its detail to its own caller; it just does
	// not overwrite the snapshot a newer load has installed.
	return detail, nil
}

// Current returns the most recently installed snapshot, if any.
func (l *DetailLoader) Current() (TripDetail, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return TripDetail{}, false
	}
	return *l.current, true
}
