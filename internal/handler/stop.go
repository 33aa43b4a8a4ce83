package handler

import (
	"net/http"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/middleware"
)

// stopRequest is the body for POST and PUT under /trips/{tripID}/stops.
type stopRequest struct {
	Name     string        `json:"name"`
	Activity string        `json:"activity,omitempty"`
	Date     apiDate       `json:"date"`
	Status   domain.Status `json:"status,omitempty"`
}

// CreateStop handles POST /trips/{tripID}/stops.
func (s *Server) CreateStop(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req stopRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.stops.Create(r.Context(), domain.ItineraryStop{
		TripID:   tripID,
		Name:     req.Name,
		Activity: req.Activity,
		Date:     req.Date.Time,
		Status:   req.Status,
	}, middleware.UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListStops handles GET /trips/{tripID}/stops.
// Supports ?status=planning|traveling|completed|all (default all).
func (s *Server) ListStops(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	stops, err := s.stops.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	if filter := r.URL.Query().Get("status"); filter != "" {
		stops = domain.FilterStops(stops, filter)
	}
	writeJSON(w, http.StatusOK, stops)
}

// UpdateStop handles PUT /trips/{tripID}/stops/{stopID}.
func (s *Server) UpdateStop(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req stopRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.stops.Update(r.Context(), domain.ItineraryStop{
		ID:       stopID,
		TripID:   tripID,
		Name:     req.Name,
		Activity: req.Activity,
		Date:     req.Date.Time,
		Status:   req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetStopStatus handles PATCH /trips/{tripID}/stops/{stopID}/status.
func (s *Server) SetStopStatus(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req struct {
		Status domain.Status `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.stops.SetStatus(r.Context(), tripID, stopID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteStop handles DELETE /trips/{tripID}/stops/{stopID}.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	if err := s.stops.Delete(r.Context(), tripID, stopID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
