package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/middleware"
	"github.com/ramoniswack/rent-tent-server/internal/service"
)

// tripRequest is the body for POST /trips and PUT /trips/{tripID}.
type tripRequest struct {
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Country     string          `json:"country"`
	StartDate   apiDate         `json:"start_date"`
	EndDate     apiDate         `json:"end_date"`
	Status      domain.Status   `json:"status,omitempty"`
	Budget      decimal.Decimal `json:"budget,omitempty"`
}

func (req tripRequest) toDomain() domain.Trip {
	return domain.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		Country:     req.Country,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		Status:      req.Status,
		Budget:      req.Budget,
	}
}

// tripWithRoster is the body for GET /trips/{tripID}: the trip record plus
// its collaborator roster in one response.
type tripWithRoster struct {
	Trip          domain.Trip           `json:"trip"`
	Collaborators []domain.Collaborator `json:"collaborators"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), req.toDomain(), middleware.UserFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /trips/{tripID}. The response carries the trip and its
// roster together so the trip screen needs a single request.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	collaborators, err := s.trips.ListCollaborators(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripWithRoster{Trip: trip, Collaborators: collaborators})
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req tripRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	trip := req.toDomain()
	trip.ID = tripID
	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	if err := s.trips.Delete(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetTripStatus handles PATCH /trips/{tripID}/status.
func (s *Server) SetTripStatus(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
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

	updated, err := s.trips.SetStatus(r.Context(), tripID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetTripBudget handles PATCH /trips/{tripID}/budget. A zero budget clears it.
func (s *Server) SetTripBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req struct {
		Budget decimal.Decimal `json:"budget"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	updated, err := s.trips.SetBudget(r.Context(), tripID, req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// InviteCollaborator handles POST /trips/{tripID}/invite.
func (s *Server) InviteCollaborator(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	var req struct {
		Username string      `json:"username"`
		Role     domain.Role `json:"role"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	collaborator, err := s.trips.Invite(r.Context(), tripID, req.Username, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, collaborator)
}

// GetTripSummary handles GET /trips/{tripID}/summary. It assembles the full
// aggregate and returns every derived figure the trip screen shows.
func (s *Server) GetTripSummary(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, service.BuildSummary(detail, middleware.UserFrom(r.Context())))
}
