package handler

import (
	"net/http"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/middleware"
)

// packingRequest is the body for POST /trips/{tripID}/packing.
type packingRequest struct {
	Name     string                 `json:"name"`
	Notes    string                 `json:"notes,omitempty"`
	Quantity int                    `json:"quantity,omitempty"`
	Category domain.PackingCategory `json:"category,omitempty"`
}

// CreatePackingItem handles POST /trips/{tripID}/packing.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req packingRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.packing.Create(r.Context(), domain.PackingItem{
		TripID:   tripID,
		Name:     req.Name,
		Notes:    req.Notes,
		Quantity: req.Quantity,
		Category: req.Category,
	}, middleware.UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListPackingItems handles GET /trips/{tripID}/packing.
// With ?grouped=true the items are returned grouped by category, the way the
// checklist screen renders them.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	items, err := s.packing.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("grouped") == "true" {
		writeJSON(w, http.StatusOK, domain.GroupPackingByCategory(items))
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// TogglePackingItem handles PATCH /trips/{tripID}/packing/{itemID}/toggle.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.packing.Toggle(r.Context(), tripID, itemID, middleware.UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetPackingQuantity handles PATCH /trips/{tripID}/packing/{itemID}/quantity.
func (s *Server) SetPackingQuantity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.packing.UpdateQuantity(r.Context(), tripID, itemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePackingItem handles DELETE /trips/{tripID}/packing/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	if err := s.packing.Delete(r.Context(), tripID, itemID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
