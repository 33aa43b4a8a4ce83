package domain

// Export row types consumed by the document-export collaborator. They are
// flat, pre-formatted views: dates and amounts are already strings so the
// exported document and the on-screen tables can never disagree on
// formatting within a session. Builders live in the service package and are
// pure functions over already-loaded ledger state.

// ItineraryRow is one line of the exported itinerary table. DayLabel is the
// 1-based "Day N" position in the stop list, not an elapsed-days count.
type ItineraryRow struct {
	DayLabel string `json:"day"`
	Name     string `json:"name"`
	Date     string `json:"date"` // "2006-01-02"
	Status   Status `json:"status"`
	Activity string `json:"activity,omitempty"`
}

// ExpenseRow is one line of the exported expense table.
type ExpenseRow struct {
	Item     string          `json:"item"`
	Category ExpenseCategory `json:"category"`
	Amount   string          `json:"amount"`
	Date     string          `json:"date"`
	Creator  string          `json:"creator"` // resolved display name, "You" when unknown
}

// ExpenseSummary is the totals block under the expense table.
// Budget and Remaining are empty strings when no budget is set.
type ExpenseSummary struct {
	Total     string `json:"total"`
	Budget    string `json:"budget,omitempty"`
	Remaining string `json:"remaining,omitempty"`
}

// PackingRow is one line of the exported packing checklist.
type PackingRow struct {
	Packed   string `json:"packed"` // "✓" or "✗"
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	AddedBy  string `json:"added_by,omitempty"`
}

// PackingSection groups exported packing rows under a category heading.
// Empty categories are omitted from the export — unlike the interactive
// checklist, a printed document has no use for blank sections.
type PackingSection struct {
	Category string       `json:"category"`
	Rows     []PackingRow `json:"rows"`
}

// TripExport is the full printable document view of one trip.
type TripExport struct {
	Title           string           `json:"title"`
	Destination     string           `json:"destination"`
	Itinerary       []ItineraryRow   `json:"itinerary"`
	Expenses        []ExpenseRow     `json:"expenses"`
	ExpenseSummary  ExpenseSummary   `json:"expense_summary"`
	Packing         []PackingSection `json:"packing"`
	PackingProgress Progress         `json:"packing_progress"`
}
