package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/middleware"
)

// expenseRequest is the body for POST /trips/{tripID}/expenses.
// Expenses have no update endpoint: a wrong entry is deleted and re-added.
type expenseRequest struct {
	Item     string                 `json:"item"`
	Amount   decimal.Decimal        `json:"amount"`
	Category domain.ExpenseCategory `json:"category"`
}

// CreateExpense handles POST /trips/{tripID}/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.expenses.Create(r.Context(), domain.Expense{
		TripID:   tripID,
		Item:     req.Item,
		Amount:   req.Amount,
		Category: req.Category,
	}, middleware.UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /trips/{tripID}/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	expenses, err := s.expenses.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// DeleteExpense handles DELETE /trips/{tripID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	if err := s.expenses.Delete(r.Context(), tripID, expenseID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
