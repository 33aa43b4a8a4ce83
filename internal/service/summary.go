package service

import (
	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

// TripSummary is the composed read-side view of a trip: every aggregate the
// trip screen shows, derived in one pass from a TripDetail snapshot. Nothing
// in here is stored — it is recomputed from current ledger state on every
// read, so it can never drift from the records.
type TripSummary struct {
	Trip          domain.Trip             `json:"trip"`
	Collaborators []domain.Collaborator   `json:"collaborators"`

	StopProgress domain.Progress          `json:"stop_progress"`

	ExpenseTotal decimal.Decimal          `json:"expense_total"`
	Budget       domain.BudgetUtilization `json:"budget"`
	Breakdown    []domain.CategoryShare   `json:"breakdown"`
	TopCategory  *domain.CategoryShare    `json:"top_category,omitempty"`
	Spending     []domain.SpendingEntry   `json:"spending"`

	PackingProgress domain.Progress        `json:"packing_progress"`
	PackingGroups   []domain.PackingGroup  `json:"packing_groups"`
	Contributors    []domain.Contributor   `json:"contributors"`
}

// BuildSummary derives the full trip summary from a detail snapshot.
// viewer is the acting user, needed for "You" attribution of creatorless
// expenses; it is passed in explicitly so the computation stays pure.
func BuildSummary(detail TripDetail, viewer domain.UserRef) TripSummary {
	total := domain.ExpenseTotal(detail.Expenses)
	breakdown := domain.CategoryBreakdown(detail.Expenses)

	summary := TripSummary{
		Trip:            detail.Trip,
		Collaborators:   detail.Collaborators,
		StopProgress:    domain.StopProgress(detail.Stops),
		ExpenseTotal:    total,
		Budget:          domain.ComputeBudgetUtilization(total, detail.Trip.Budget),
		Breakdown:       breakdown,
		Spending:        domain.CollaboratorSpending(detail.Expenses, detail.Trip.Owner, detail.Collaborators, viewer),
		PackingProgress: domain.PackingProgress(detail.Packing),
		PackingGroups:   domain.GroupPackingByCategory(detail.Packing),
		Contributors:    domain.PackingContributors(detail.Packing),
	}
	if top, ok := domain.TopCategory(breakdown); ok {
		summary.TopCategory = &top
	}
	return summary
}
