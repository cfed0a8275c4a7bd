package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fitpet/internal/auth"
	"fitpet/internal/models"
	"fitpet/internal/service"
	"fitpet/internal/validate"
)

type petRequest struct {
	Name      string  `json:"name" validate:"required,notblank"`
	Species   string  `json:"species" validate:"required,notblank"`
	Breed     string  `json:"breed" validate:"required,notblank"`
	Sex       string  `json:"sex" validate:"required,notblank"`
	BirthDate string  `json:"birthDate" validate:"required"`
	WeightKg  float64 `json:"weightKg" validate:"gt=0"`
	ImageURL  string  `json:"imageUrl"`
}

type petResponse struct {
	ID        uint    `json:"id"`
	OwnerID   string  `json:"ownerId"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	Sex       string  `json:"sex"`
	BirthDate string  `json:"birthDate"`
	WeightKg  float64 `json:"weightKg"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

func toPetResponse(p *models.Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Sex:       p.Sex,
		BirthDate: time.Time(p.BirthDate).Format("2006-01-02"),
		WeightKg:  p.WeightKg,
		ImageURL:  p.ImageURL,
	}
}

// petInput validates the payload and resolves the birth date, which must
// be a calendar date strictly in the past.
func petInput(w http.ResponseWriter, r *http.Request, v *validate.Validator) (service.PetInput, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "malformed request body")
		return service.PetInput{}, false
	}
	if violations := v.Struct(req); violations != nil {
		badRequest(w, validate.First(violations))
		return service.PetInput{}, false
	}
	born, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		badRequest(w, "birthDate must be a date in YYYY-MM-DD format")
		return service.PetInput{}, false
	}
	// Compared at date granularity: today is not in the past.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !born.Before(today) {
		badRequest(w, "birthDate must be in the past")
		return service.PetInput{}, false
	}
	return service.PetInput{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		BirthDate: born,
		WeightKg:  req.WeightKg,
		ImageURL:  req.ImageURL,
	}, true
}

// petID parses the id path param. Anything non-numeric reads the same as
// a missing pet.
func petID(w http.ResponseWriter, r *http.Request, lg *zap.SugaredLogger) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		translateError(w, lg, service.ErrPetNotFound)
		return 0, false
	}
	return uint(id), true
}

// CreatePet registers a pet owned by the caller.
// POST {base}/pets -> 201 + Location | 400 | 401.
func CreatePet(svc *service.PetService, v *validate.Validator, lg *zap.SugaredLogger, base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := petInput(w, r, v)
		if !ok {
			return
		}
		pet, err := svc.Create(r.Context(), auth.Subject(r.Context()), in)
		if err != nil {
			translateError(w, lg, err)
			return
		}
		w.Header().Set("Location", fmt.Sprintf("%s/pets/%d", base, pet.ID))
		respondJSON(w, http.StatusCreated, toPetResponse(pet))
	}
}

// ListPets returns the caller's pets, optionally filtered by species.
// GET {base}/pets[?species=...] -> 200 [pet...] | 401.
func ListPets(svc *service.PetService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.List(r.Context(), auth.Subject(r.Context()), r.URL.Query().Get("species"))
		if err != nil {
			translateError(w, lg, err)
			return
		}
		out := make([]petResponse, 0, len(pets))
		for i := range pets {
			out = append(out, toPetResponse(&pets[i]))
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// GetPet -> 200 pet | 404 | 401.
func GetPet(svc *service.PetService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(w, r, lg)
		if !ok {
			return
		}
		pet, err := svc.Get(r.Context(), auth.Subject(r.Context()), id)
		if err != nil {
			translateError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

// UpdatePet replaces the mutable fields in place.
// PUT {base}/pets/{id} -> 200 updated pet | 400 | 404 | 401.
func UpdatePet(svc *service.PetService, v *validate.Validator, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(w, r, lg)
		if !ok {
			return
		}
		in, ok := petInput(w, r, v)
		if !ok {
			return
		}
		pet, err := svc.Update(r.Context(), auth.Subject(r.Context()), id, in)
		if err != nil {
			translateError(w, lg, err)
			return
		}
		respondJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

// DeletePet -> 204 | 404 | 401.
func DeletePet(svc *service.PetService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(w, r, lg)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), auth.Subject(r.Context()), id); err != nil {
			translateError(w, lg, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
