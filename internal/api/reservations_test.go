package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// newCRUDRouter mounts the reservation handlers on a bare chi router so URL
// params resolve. The repos are zero-value; these tests only exercise the
// validation paths that reject before any query runs.
func newCRUDRouter() *chi.Mux {
	handlers := NewHandlers(&Dependencies{
		Repo:     &Repositories{},
		Services: &Services{},
	})

	r := chi.NewRouter()
	r.Post("/reservations", handlers.CreateReservation())
	r.Get("/reservations/{id}", handlers.GetReservation())
	r.Put("/reservations/{id}", handlers.UpdateReservation())
	r.Delete("/reservations/{id}", handlers.DeleteReservation())
	return r
}

func TestCreateReservationRejectsBadBody(t *testing.T) {
	r := newCRUDRouter()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing resource", `{"user_id": "u1", "start_time": "2025-07-12T15:00:00Z", "end_time": "2025-07-12T17:00:00Z"}`},
		{"missing user", `{"resource_id": 1, "start_time": "2025-07-12T15:00:00Z", "end_time": "2025-07-12T17:00:00Z"}`},
		{"missing window", `{"resource_id": 1, "user_id": "u1"}`},
		{"unparseable times", `{"resource_id": 1, "user_id": "u1", "start_time": "next tuesday", "end_time": "later"}`},
		{"inverted window", `{"resource_id": 1, "user_id": "u1", "start_time": "2025-07-12T17:00:00Z", "end_time": "2025-07-12T15:00:00Z"}`},
		{"zero-length window", `{"resource_id": 1, "user_id": "u1", "start_time": "2025-07-12T15:00:00Z", "end_time": "2025-07-12T15:00:00Z"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestUpdateReservationRejectsBadBody(t *testing.T) {
	r := newCRUDRouter()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{{`},
		{"missing resource", `{"start_time": "2025-07-12T15:00:00Z", "end_time": "2025-07-12T17:00:00Z"}`},
		{"inverted window", `{"resource_id": 1, "start_time": "2025-07-12T17:00:00Z", "end_time": "2025-07-12T15:00:00Z"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/reservations/7", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestReservationIDMustBeNumeric(t *testing.T) {
	r := newCRUDRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/reservations/abc", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s /reservations/abc: status = %d, want 400", method, rr.Code)
		}
	}
}

func TestParseWindow(t *testing.T) {
	start, end, err := parseWindow("2025-07-12T15:00:00Z", "2025-07-12T17:00:00-06:00")
	if err != nil {
		t.Fatalf("parseWindow failed: %v", err)
	}
	if !end.After(start) {
		t.Error("expected end after start across offsets")
	}

	if _, _, err := parseWindow("2025-07-12T17:00:00Z", "2025-07-12T15:00:00Z"); err == nil {
		t.Error("expected error for inverted window")
	}
	if _, _, err := parseWindow("2025-07-12", "2025-07-13"); err == nil {
		t.Error("expected error for date-only values")
	}
}
