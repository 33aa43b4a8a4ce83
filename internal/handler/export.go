// Package handler — export.go implements GET /trips/{tripID}/export.
// Returns the printable trip document: itinerary, expense report, and packing
// checklist. Supports content negotiation via ?format=csv (CSV) or default
// (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/middleware"
)

// Section header rows for the CSV export. Each section of the document is a
// block with its own header row, separated by a blank line, so the file opens
// cleanly in a spreadsheet.
var (
	csvItineraryHeader = []string{"day", "stop", "date", "status", "activity"}
	csvExpenseHeader   = []string{"item", "category", "amount", "date", "added_by"}
	csvPackingHeader   = []string{"packed", "item", "quantity", "notes", "added_by"}
)

// GetTripExport handles GET /trips/{tripID}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetTripExport(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	detail, err := s.detail.Load(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	doc := s.export.Build(detail, middleware.UserFrom(r.Context()))

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, doc)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// writeCSVExport encodes the export document as a multi-section CSV file.
func writeCSVExport(w http.ResponseWriter, doc domain.TripExport) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — csv.Writer on a bytes.Buffer never returns an error.
	cw.Write([]string{doc.Title, doc.Destination})
	cw.Write(nil)

	cw.Write(csvItineraryHeader)
	for _, row := range doc.Itinerary {
		cw.Write([]string{row.DayLabel, row.Name, row.Date, string(row.Status), row.Activity})
	}
	cw.Write(nil)

	cw.Write(csvExpenseHeader)
	for _, row := range doc.Expenses {
		cw.Write([]string{row.Item, string(row.Category), row.Amount, row.Date, row.Creator})
	}
	cw.Write([]string{"total", "", doc.ExpenseSummary.Total, "", ""})
	if doc.ExpenseSummary.Budget != "" {
		cw.Write([]string{"budget", "", doc.ExpenseSummary.Budget, "", ""})
		cw.Write([]string{"remaining", "", doc.ExpenseSummary.Remaining, "", ""})
	}
	cw.Write(nil)

	cw.Write(csvPackingHeader)
	for _, section := range doc.Packing {
		cw.Write([]string{section.Category})
		for _, row := range section.Rows {
			cw.Write([]string{row.Packed, row.Name, strconv.Itoa(row.Quantity), row.Notes, row.AddedBy})
		}
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "trip-export.csv"))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck — a failed write here means the client went away.
	w.Write(buf.Bytes())
}
