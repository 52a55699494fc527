package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/schedule"
)

type scheduleService interface {
	SaveSchedule(ctx context.Context, input schedule.SaveScheduleInput) (*domain.Schedule, error)
	ListSchedules(ctx context.Context) ([]*domain.Schedule, error)
	SchedulesForPet(ctx context.Context, petID int64) ([]*domain.Schedule, error)
	SchedulesForEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error)
	SchedulesForCustomer(ctx context.Context, customerID int64) ([]*domain.Schedule, error)
}

// ScheduleHandler serves the /schedule endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

// CreateSchedule handles POST /schedule.
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.SaveSchedule(r.Context(), schedule.SaveScheduleInput{
		ID:          req.ID,
		Date:        req.Date.Time,
		Activities:  req.Activities,
		PetIDs:      req.PetIDs,
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(s))
}

// ListSchedules handles GET /schedule.
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context) ([]*domain.Schedule, error) {
		return h.svc.ListSchedules(ctx)
	})
}

// ForPet handles GET /schedule/pet/{petId}.
func (h *ScheduleHandler) ForPet(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, "petId", h.svc.SchedulesForPet)
}

// ForEmployee handles GET /schedule/employee/{employeeId}.
func (h *ScheduleHandler) ForEmployee(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, "employeeId", h.svc.SchedulesForEmployee)
}

// ForCustomer handles GET /schedule/customer/{customerId}.
func (h *ScheduleHandler) ForCustomer(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, "customerId", h.svc.SchedulesForCustomer)
}

func (h *ScheduleHandler) listBy(w http.ResponseWriter, r *http.Request, param string, fn func(context.Context, int64) ([]*domain.Schedule, error)) {
	id, err := pathID(r, param)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.list(w, r, func(ctx context.Context) ([]*domain.Schedule, error) {
		return fn(ctx, id)
	})
}

func (h *ScheduleHandler) list(w http.ResponseWriter, r *http.Request, fn func(context.Context) ([]*domain.Schedule, error)) {
	schedules, err := fn(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(schedules, toScheduleDTO))
}
