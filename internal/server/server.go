// Package server exposes the amortization tool over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cloud-ru/amortization-go/internal/apperrors"
	"github.com/cloud-ru/amortization-go/internal/report"
	"github.com/cloud-ru/amortization-go/internal/tools"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server routes HTTP requests to the schedule tool.
type Server struct {
	schedule tools.ToolHandler
}

func New(schedule tools.ToolHandler) *Server {
	return &Server{schedule: schedule}
}

// Router returns the HTTP routes:
//
//	POST /v1/schedules   JSON body {"principal", "annual_rate_percent", "term_years"}
//	GET  /v1/schedules   same fields as query parameters, plus format=json|text
//	GET  /healthz
//	GET  /metrics
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/schedules", s.createScheduleHandler).Methods(http.MethodPost)
	r.HandleFunc("/v1/schedules", s.queryScheduleHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func (s *Server) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var params map[string]interface{}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	s.serve(w, r, params, "json")
}

func (s *Server) queryScheduleHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := make(map[string]interface{})
	for _, name := range []string{"principal", "annual_rate_percent", "term_years"} {
		if v := q.Get(name); v != "" {
			params[name] = v
		}
	}

	s.serve(w, r, params, q.Get("format"))
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, params map[string]interface{}, format string) {
	out, err := s.schedule(r.Context(), params)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	result, ok := out.(*tools.ScheduleResult)
	if !ok {
		slog.ErrorContext(r.Context(), "unexpected tool result", "type", fmt.Sprintf("%T", out))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Schedule-Id", result.ID.String())
		if err := report.NewTextWriter().WriteSchedule(w, result.Items); err != nil {
			slog.ErrorContext(r.Context(), "failed to write schedule", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode schedule", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDegenerateLoan):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
