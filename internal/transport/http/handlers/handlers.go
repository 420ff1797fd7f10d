// Package handlers exposes the roster and payroll services over HTTP. The
// core is single-writer: persistence is a full-document rewrite, so mutating
// and generating requests hold the write lock and reads hold the read lock.
// The roster itself has no locking; every access goes through h.mu.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
	"nomina/internal/transport/http/api"
	"nomina/internal/transport/http/middleware"
)

type Handler struct {
	mu      sync.RWMutex
	roster  *employee.Roster
	payroll *payroll.Service
}

func New(roster *employee.Roster, payrollService *payroll.Service) *Handler {
	return &Handler{roster: roster, payroll: payrollService}
}

func (h *Handler) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/employees", h.handleListEmployees)
		r.Post("/employees", h.handleCreateEmployee)
		r.Put("/employees/{cedula}", h.handleUpdateEmployee)
		r.Delete("/employees/{cedula}", h.handleDeleteEmployee)
		r.Post("/payrolls/{period}", h.handleGeneratePayroll)
		r.Get("/payrolls/{period}", h.handleGetPayroll)
		r.Get("/payrolls/{period}/stats", h.handlePayrollStats)
	})

	return router
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	listed := h.roster.List()
	h.mu.RUnlock()
	api.Success(w, listed, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var candidate employee.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	h.mu.Lock()
	err := h.roster.Create(candidate)
	var created employee.Employee
	if err == nil {
		created, err = h.roster.Get(*candidate.Cedula)
	}
	h.mu.Unlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	cedula := chi.URLParam(r, "cedula")

	var changes employee.Changes
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	h.mu.Lock()
	err := h.roster.Update(cedula, changes)
	var updated employee.Employee
	if err == nil {
		updated, err = h.roster.Get(cedula)
	}
	h.mu.Unlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.mu.Lock()
	err := h.roster.Delete(chi.URLParam(r, "cedula"))
	h.mu.Unlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleGeneratePayroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.mu.Lock()
	run, err := h.payroll.Generate(h.roster.List(), chi.URLParam(r, "period"))
	h.mu.Unlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Created(w, run, reqID)
}

func (h *Handler) handleGetPayroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	h.mu.RLock()
	run, err := h.payroll.Load(chi.URLParam(r, "period"))
	h.mu.RUnlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) handlePayrollStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	h.mu.RLock()
	stats, err := h.payroll.Report(chi.URLParam(r, "period"))
	h.mu.RUnlock()
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, stats, reqID)
}

func (h *Handler) fail(w http.ResponseWriter, err error, reqID string) {
	var validationErr *employee.ValidationError
	switch {
	case errors.As(err, &validationErr):
		api.Fail(w, http.StatusBadRequest, "validation_error", validationErr.Error(), reqID)
	case errors.Is(err, employee.ErrDuplicateCedula):
		api.Fail(w, http.StatusConflict, "duplicate_cedula", err.Error(), reqID)
	case errors.Is(err, employee.ErrNotFound), errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), reqID)
	case errors.Is(err, payroll.ErrEmptyRoster):
		api.Fail(w, http.StatusBadRequest, "empty_roster", err.Error(), reqID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "io_failure", "persistence failure", reqID)
	}
}
