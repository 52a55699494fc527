package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/customer"
	"github.com/heartmarshall/critter-backend/internal/service/employee"
)

type customerService interface {
	SaveCustomer(ctx context.Context, input customer.SaveCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetOwnerByPet(ctx context.Context, petID int64) (*domain.Customer, error)
}

type employeeService interface {
	SaveEmployee(ctx context.Context, input employee.SaveEmployeeInput) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	SetAvailability(ctx context.Context, id int64, days []domain.DayOfWeek) (*domain.Employee, error)
	FindAvailable(ctx context.Context, input employee.AvailabilityInput) ([]*domain.Employee, error)
}

// UserHandler serves the /user endpoints for customers and employees.
type UserHandler struct {
	customers customerService
	employees employeeService
	log       *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(customers customerService, employees employeeService, logger *slog.Logger) *UserHandler {
	return &UserHandler{customers: customers, employees: employees, log: logger.With("handler", "user")}
}

// SaveCustomer handles POST /user/customer.
func (h *UserHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.customers.SaveCustomer(r.Context(), customer.SaveCustomerInput{
		ID:          req.ID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerDTO(c))
}

// ListCustomers handles GET /user/customer.
func (h *UserHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(customers, toCustomerDTO))
}

// GetOwnerByPet handles GET /user/customer/pet/{petId}.
func (h *UserHandler) GetOwnerByPet(w http.ResponseWriter, r *http.Request) {
	petID, err := pathID(r, "petId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.customers.GetOwnerByPet(r.Context(), petID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerDTO(c))
}

// SaveEmployee handles POST /user/employee.
func (h *UserHandler) SaveEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.employees.SaveEmployee(r.Context(), employee.SaveEmployeeInput{
		ID:            req.ID,
		Name:          req.Name,
		Skills:        req.Skills,
		DaysAvailable: req.DaysAvailable,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// ListEmployees handles GET /user/employees.
func (h *UserHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(employees, toEmployeeDTO))
}

// GetEmployee handles GET /user/employee/{employeeId}.
func (h *UserHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.employees.GetEmployee(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// SetAvailability handles PUT /user/employee/{employeeId}. The body is a JSON
// array of day names.
func (h *UserHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var days []domain.DayOfWeek
	if err := decodeJSON(w, r, &days); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.employees.SetAvailability(r.Context(), id, days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// FindAvailable handles GET and POST /user/employee/availability. The request
// comes as a JSON body; date and skills query parameters are accepted when the
// body is empty.
func (h *UserHandler) FindAvailable(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if !errors.Is(err, errEmptyBody) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req, err = availabilityFromQuery(r); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	employees, err := h.employees.FindAvailable(r.Context(), employee.AvailabilityInput{
		Date:   req.Date.Time,
		Skills: req.Skills,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(employees, toEmployeeDTO))
}

func availabilityFromQuery(r *http.Request) (availabilityRequest, error) {
	var req availabilityRequest
	q := r.URL.Query()

	if raw := q.Get("date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return req, errors.New("invalid date, want YYYY-MM-DD")
		}
		req.Date = Date{Time: t}
	}
	for _, v := range q["skills"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Skills = append(req.Skills, domain.EmployeeSkill(strings.ToUpper(s)))
			}
		}
	}
	return req, nil
}
