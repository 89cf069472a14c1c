package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"aero-club/tower/internal/common"
	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListReservations handles GET /api/v1/reservations
// futureOnly restricts the listing to reservations that have not started yet.
func (h *Handlers) ListReservations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		// Presence of the flag is enough; ?futureOnly and ?futureOnly=true both work.
		futureOnly := r.URL.Query().Has("futureOnly") && r.URL.Query().Get("futureOnly") != "false"

		reservations, err := h.deps.Repo.Reservations.List(r.Context(), futureOnly)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch reservations", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reservations)
	}
}

// GetReservation handles GET /api/v1/reservations/{id}
func (h *Handlers) GetReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid reservation id", http.StatusBadRequest)
			return
		}

		reservation, err := h.deps.Repo.Reservations.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				common.RespondError(w, initTime, nil, "Reservation not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch reservation", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reservation)
	}
}

// CreateReservation handles POST /api/v1/reservations
func (h *Handlers) CreateReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateReservationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.ResourceID == 0 || req.UserID == "" || req.StartTime == "" || req.EndTime == "" {
			common.RespondError(w, initTime, nil, "Missing required fields", http.StatusBadRequest)
			return
		}

		start, end, err := parseWindow(req.StartTime, req.EndTime)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid time window", http.StatusBadRequest)
			return
		}

		notes := common.Truncate(req.Notes, constants.NotesMaxLen)
		id, err := h.deps.Repo.Reservations.Insert(r.Context(),
			req.ResourceID, req.UserID, start, end, req.RequiresReview, notes)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to save reservation", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dtos.CreateReservationResp{Success: true, ID: id})
	}
}

// UpdateReservation handles PUT /api/v1/reservations/{id}
// Full replace of the time window, resource and notes.
func (h *Handlers) UpdateReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid reservation id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateReservationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.ResourceID == 0 || req.StartTime == "" || req.EndTime == "" {
			common.RespondError(w, initTime, nil, "Missing required fields", http.StatusBadRequest)
			return
		}

		start, end, err := parseWindow(req.StartTime, req.EndTime)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid time window", http.StatusBadRequest)
			return
		}

		notes := common.Truncate(req.Notes, constants.NotesMaxLen)
		if err := h.deps.Repo.Reservations.Update(r.Context(), id, req.ResourceID, start, end, notes); err != nil {
			common.RespondError(w, initTime, err, "Failed to update reservation", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dtos.UpdateReservationResp{Success: true})
	}
}

// DeleteReservation handles DELETE /api/v1/reservations/{id}
func (h *Handlers) DeleteReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid reservation id", http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Reservations.Delete(r.Context(), id); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete reservation", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// parseWindow validates the RFC 3339 time pair and its ordering.
func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.New("end_time must be after start_time")
	}
	return start, end, nil
}
