package service

import (
	"fmt"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

// exportDateLayout is the date format used throughout exported documents.
const exportDateLayout = "2006-01-02"

// Glyphs for the packed column of the exported checklist.
const (
	packedGlyph   = "✓"
	unpackedGlyph = "✗"
)

// ExportService builds the printable document view of a trip. Every builder
// is a pure function over an already-loaded TripDetail — no fetching, no
// clock reads, no randomness — so the exported document always matches what
// the trip screen showed at the same moment.
type ExportService struct{}

// NewExportService constructs an ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Build assembles the full export document for one trip.
func (s *ExportService) Build(detail TripDetail, viewer domain.UserRef) domain.TripExport {
	expenses, summary := s.BuildExpenses(detail.Trip, detail.Expenses, detail.Collaborators, viewer)
	packing, progress := s.BuildPacking(detail.Packing)
	return domain.TripExport{
		Title:           detail.Trip.Title,
		Destination:     detail.Trip.Destination,
		Itinerary:       s.BuildItinerary(detail.Stops),
		Expenses:        expenses,
		ExpenseSummary:  summary,
		Packing:         packing,
		PackingProgress: progress,
	}
}

// BuildItinerary renders stops as itinerary rows. The "Day N" label comes
// from each stop's 1-based position in the given list — callers filtering
// the list first get labels renumbered against the filtered view, matching
// the on-screen itinerary.
func (s *ExportService) BuildItinerary(stops []domain.ItineraryStop) []domain.ItineraryRow {
	rows := make([]domain.ItineraryRow, 0, len(stops))
	for i, stop := range stops {
		rows = append(rows, domain.ItineraryRow{
			DayLabel: fmt.Sprintf("Day %d", i+1),
			Name:     stop.Name,
			Date:     stop.Date.Format(exportDateLayout),
			Status:   stop.Status,
			Activity: stop.Activity,
		})
	}
	return rows
}

// BuildExpenses renders expense rows plus the totals block. Creator names
// resolve roster-first; an expense with no recorded creator shows as "You".
func (s *ExportService) BuildExpenses(
	trip domain.Trip,
	expenses []domain.Expense,
	collaborators []domain.Collaborator,
	viewer domain.UserRef,
) ([]domain.ExpenseRow, domain.ExpenseSummary) {
	roster := domain.RosterIndex(trip.Owner, collaborators)

	rows := make([]domain.ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		creator := "You"
		if e.Creator.Known() {
			creator = domain.ResolveMember(roster, e.Creator).Display()
		}
		rows = append(rows, domain.ExpenseRow{
			Item:     e.Item,
			Category: e.Category,
			Amount:   e.Amount.StringFixed(2),
			Date:     e.CreatedAt.Format(exportDateLayout),
			Creator:  creator,
		})
	}

	total := domain.ExpenseTotal(expenses)
	summary := domain.ExpenseSummary{Total: total.StringFixed(2)}
	if trip.HasBudget() {
		summary.Budget = trip.Budget.StringFixed(2)
		summary.Remaining = trip.Budget.Sub(total).StringFixed(2)
	}
	return rows, summary
}

// BuildPacking renders the checklist grouped by category, skipping empty
// categories (a printed document has no use for blank sections), plus the
// overall packed/unpacked progress.
func (s *ExportService) BuildPacking(items []domain.PackingItem) ([]domain.PackingSection, domain.Progress) {
	var sections []domain.PackingSection
	for _, group := range domain.GroupPackingByCategory(items) {
		if len(group.Items) == 0 {
			continue
		}
		rows := make([]domain.PackingRow, 0, len(group.Items))
		for _, item := range group.Items {
			glyph := unpackedGlyph
			if item.IsPacked {
				glyph = packedGlyph
			}
			rows = append(rows, domain.PackingRow{
				Packed:   glyph,
				Name:     item.Name,
				Quantity: item.Quantity,
				Notes:    item.Notes,
				AddedBy:  item.Creator.Display(),
			})
		}
		sections = append(sections, domain.PackingSection{Category: group.Label, Rows: rows})
	}
	return sections, domain.PackingProgress(items)
}
