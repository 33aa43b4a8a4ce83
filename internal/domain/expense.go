package domain

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a shared expense. Unknown strings are rejected
// at validation time, so every stored expense carries one of these values.
type ExpenseCategory string

const (
	ExpenseAccommodation  ExpenseCategory = "accommodation"
	ExpenseFood           ExpenseCategory = "food"
	ExpenseTransportation ExpenseCategory = "transportation"
	ExpenseActivities     ExpenseCategory = "activities"
	ExpenseShopping       ExpenseCategory = "shopping"
	ExpenseOther          ExpenseCategory = "other"
)

// ExpenseCategories lists every known category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseAccommodation,
	ExpenseFood,
	ExpenseTransportation,
	ExpenseActivities,
	ExpenseShopping,
	ExpenseOther,
}

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a shared trip expense. Amounts are in the trip's native
// currency units; no conversion is ever performed. Creator is an optional
// identity snapshot — expenses with no recorded creator are displayed as
// belonging to the acting viewer ("You"), but the record itself keeps the
// absent creator.
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	TripID    uuid.UUID       `json:"trip_id"`
	Item      string          `json:"item"`
	Amount    decimal.Decimal `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Creator   UserRef         `json:"creator,omitzero"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseTotal sums the amounts of all expenses.
func ExpenseTotal(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryShare is one slice of the per-category spending breakdown.
type CategoryShare struct {
	Category   ExpenseCategory `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// CategoryBreakdown groups expenses by category and computes each category's
// share of the total. Categories appear in first-occurrence order. When the
// total is zero the breakdown is empty — there is nothing to apportion.
func CategoryBreakdown(expenses []Expense) []CategoryShare {
	total := ExpenseTotal(expenses)
	if !total.IsPositive() {
		return nil
	}

	byCategory := make(map[ExpenseCategory]decimal.Decimal)
	var order []ExpenseCategory
	for _, e := range expenses {
		if _, seen := byCategory[e.Category]; !seen {
			order = append(order, e.Category)
		}
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, c := range order {
		amount := byCategory[c]
		shares = append(shares, CategoryShare{
			Category:   c,
			Amount:     amount,
			Percentage: percentOf(amount, total),
		})
	}
	return shares
}

// TopCategory returns the category with the largest spend. Ties break toward
// the first-encountered category, which CategoryBreakdown already puts first.
// ok is false when there is no spending at all.
func TopCategory(breakdown []CategoryShare) (CategoryShare, bool) {
	if len(breakdown) == 0 {
		return CategoryShare{}, false
	}
	top := breakdown[0]
	for _, share := range breakdown[1:] {
		if share.Amount.GreaterThan(top.Amount) {
			top = share
		}
	}
	return top, true
}

// BudgetUtilization describes spending against the trip budget.
// PercentUsed is clamped to [0,100] for progress-bar rendering; RawPercent
// is unclamped for the warning threshold check. Warning fires when spending
// exceeds 80% of the budget. Set is false when no budget has been set, in
// which case no other field is meaningful and no warning is ever raised.
type BudgetUtilization struct {
	Set         bool            `json:"set"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed int             `json:"percent_used"`
	RawPercent  int             `json:"raw_percent"`
	Warning     bool            `json:"warning"`
}

// ComputeBudgetUtilization derives budget usage from the spent total and the
// trip budget. A zero or negative budget means "not set".
func ComputeBudgetUtilization(total, budget decimal.Decimal) BudgetUtilization {
	if !budget.IsPositive() {
		return BudgetUtilization{}
	}
	raw := percentOf(total, budget)
	used := raw
	if used > 100 {
		used = 100
	}
	if used < 0 {
		used = 0
	}
	threshold := budget.Mul(decimal.NewFromFloat(0.8))
	return BudgetUtilization{
		Set:         true,
		Remaining:   budget.Sub(total),
		PercentUsed: used,
		RawPercent:  raw,
		Warning:     total.GreaterThan(threshold),
	}
}

// SpendingEntry is one collaborator's share of trip spending.
type SpendingEntry struct {
	User       UserRef         `json:"user"`
	IsViewer   bool            `json:"is_viewer"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// CollaboratorSpending attributes expenses to the people who recorded them.
// Identities resolve roster-first (owner plus accepted collaborators) with
// the expense's own embedded creator snapshot as the fallback for users who
// have left the trip. Expenses with no recorded creator are attributed to
// the acting viewer — a display rule only, the records are untouched.
// Entries are sorted descending by amount; equal amounts keep
// first-encountered order. Entry amounts always sum to ExpenseTotal.
func CollaboratorSpending(expenses []Expense, owner UserRef, collaborators []Collaborator, viewer UserRef) []SpendingEntry {
	total := ExpenseTotal(expenses)
	roster := RosterIndex(owner, collaborators)

	byUser := make(map[uuid.UUID]*SpendingEntry)
	var order []uuid.UUID
	for _, e := range expenses {
		ref := e.Creator
		isViewer := false
		if !ref.Known() {
			ref = viewer
			isViewer = true
		}
		entry, ok := byUser[ref.ID]
		if !ok {
			entry = &SpendingEntry{
				User:     ResolveMember(roster, ref),
				IsViewer: isViewer || (viewer.Known() && ref.ID == viewer.ID),
				Amount:   decimal.Zero,
			}
			byUser[ref.ID] = entry
			order = append(order, ref.ID)
		}
		entry.Amount = entry.Amount.Add(e.Amount)
	}

	entries := make([]SpendingEntry, 0, len(order))
	for _, id := range order {
		entry := *byUser[id]
		entry.Percentage = percentOf(entry.Amount, total)
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
	return entries
}

// percentOf returns round(100 * part / whole), or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	ratio, _ := part.Div(whole).Float64()
	return int(math.Round(100 * ratio))
}
