package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/pet"
)

type petService interface {
	SavePet(ctx context.Context, input pet.SavePetInput) (*domain.Pet, error)
	GetPet(ctx context.Context, id int64) (*domain.Pet, error)
	ListPets(ctx context.Context) ([]*domain.Pet, error)
	ListPetsByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
}

// PetHandler serves the /pet endpoints.
type PetHandler struct {
	svc petService
	log *slog.Logger
}

// NewPetHandler creates a PetHandler.
func NewPetHandler(svc petService, logger *slog.Logger) *PetHandler {
	return &PetHandler{svc: svc, log: logger.With("handler", "pet")}
}

// SavePet handles POST /pet.
func (h *PetHandler) SavePet(w http.ResponseWriter, r *http.Request) {
	var req petDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.save(w, r, req)
}

// SavePetForOwner handles POST /pet/{id} where id is the owner; the path owner
// wins over the body.
func (h *PetHandler) SavePetForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req petDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = ownerID
	h.save(w, r, req)
}

func (h *PetHandler) save(w http.ResponseWriter, r *http.Request, req petDTO) {
	p, err := h.svc.SavePet(r.Context(), pet.SavePetInput{
		ID:        req.ID,
		Type:      req.Type,
		Name:      req.Name,
		OwnerID:   req.OwnerID,
		BirthDate: req.BirthDate.timePtr(),
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPetDTO(p))
}

// GetPet handles GET /pet/{id}.
func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.GetPet(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPetDTO(p))
}

// ListPets handles GET /pet.
func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.svc.ListPets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(pets, toPetDTO))
}

// ListPetsByOwner handles GET /pet/owner/{ownerId}.
func (h *PetHandler) ListPetsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "ownerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pets, err := h.svc.ListPetsByOwner(r.Context(), ownerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(pets, toPetDTO))
}
