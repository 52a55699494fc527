package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/critter-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	User     *UserHandler
	Pet      *PetHandler
	Schedule *ScheduleHandler
	Health   *HealthHandler
}

// NewRouter mounts all routes behind mw.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	if mw != nil {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/user", func(r chi.Router) {
		r.Post("/customer", h.User.SaveCustomer)
		r.Get("/customer", h.User.ListCustomers)
		r.Get("/customer/pet/{petId}", h.User.GetOwnerByPet)

		r.Post("/employee", h.User.SaveEmployee)
		r.Get("/employees", h.User.ListEmployees)
		r.Get("/employee/availability", h.User.FindAvailable)
		r.Post("/employee/availability", h.User.FindAvailable)
		r.Get("/employee/{employeeId}", h.User.GetEmployee)
		r.Post("/employee/{employeeId}", h.User.GetEmployee)
		r.Put("/employee/{employeeId}", h.User.SetAvailability)
	})

	r.Route("/pet", func(r chi.Router) {
		r.Post("/", h.Pet.SavePet)
		r.Get("/", h.Pet.ListPets)
		r.Get("/owner/{ownerId}", h.Pet.ListPetsByOwner)
		r.Get("/{id}", h.Pet.GetPet)
		r.Post("/{id}", h.Pet.SavePetForOwner)
	})

	r.Route("/schedule", func(r chi.Router) {
		r.Post("/", h.Schedule.CreateSchedule)
		r.Get("/", h.Schedule.ListSchedules)
		r.Get("/pet/{petId}", h.Schedule.ForPet)
		r.Get("/employee/{employeeId}", h.Schedule.ForEmployee)
		r.Get("/customer/{customerId}", h.Schedule.ForCustomer)
	})

	return r
}
