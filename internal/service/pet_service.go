package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitpet/internal/models"
	"fitpet/internal/repository"
)

// PetService is ownership-scoped CRUD over pet records. Every operation
// takes the authenticated principal explicitly; nothing is read from
// ambient state.
type PetService struct {
	pets  repository.PetRepository
	users repository.UserRepository
	lg    *zap.SugaredLogger
}

func NewPetService(pets repository.PetRepository, users repository.UserRepository, lg *zap.SugaredLogger) *PetService {
	return &PetService{pets: pets, users: users, lg: lg}
}

// PetInput carries the mutable pet fields. BirthDate is already parsed
// and past-checked by the boundary; strings are trimmed here so create
// and update behave identically.
type PetInput struct {
	Name      string
	Species   string
	Breed     string
	Sex       string
	BirthDate time.Time
	WeightKg  float64
	ImageURL  string
}

func (s *PetService) Create(ctx context.Context, principal string, in PetInput) (*models.Pet, error) {
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pet := &models.Pet{
		OwnerID:   owner.ID,
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Sex:       strings.TrimSpace(in.Sex),
		BirthDate: datatypes.Date(in.BirthDate),
		WeightKg:  in.WeightKg,
		ImageURL:  strings.TrimSpace(in.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	s.lg.Infow("pet created", "id", pet.ID, "owner", principal)
	return pet, nil
}

// List returns the principal's pets; empty slice, never an error, when
// they have none. A non-empty species narrows to an exact trimmed match.
func (s *PetService) List(ctx context.Context, principal, species string) ([]models.Pet, error) {
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.pets.ListByOwner(ctx, owner.ID, strings.TrimSpace(species))
}

func (s *PetService) Get(ctx context.Context, principal string, id uint) (*models.Pet, error) {
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, id, owner.ID)
}

// Update replaces the mutable fields in place. The owner reference never
// changes.
func (s *PetService) Update(ctx context.Context, principal string, id uint, in PetInput) (*models.Pet, error) {
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return nil, err
	}
	pet, err := s.find(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}

	pet.Name = strings.TrimSpace(in.Name)
	pet.Species = strings.TrimSpace(in.Species)
	pet.Breed = strings.TrimSpace(in.Breed)
	pet.Sex = strings.TrimSpace(in.Sex)
	pet.BirthDate = datatypes.Date(in.BirthDate)
	pet.WeightKg = in.WeightKg
	pet.ImageURL = strings.TrimSpace(in.ImageURL)
	pet.UpdatedAt = time.Now()

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete removes the record. A second delete of the same id reports
// ErrPetNotFound, not success.
func (s *PetService) Delete(ctx context.Context, principal string, id uint) error {
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return err
	}
	pet, err := s.find(ctx, id, owner.ID)
	if err != nil {
		return err
	}
	if err := s.pets.Delete(ctx, pet); err != nil {
		return err
	}
	s.lg.Infow("pet deleted", "id", id, "owner", principal)
	return nil
}

// find folds a cross-owner hit into the same ErrPetNotFound as a miss so
// ids cannot be probed.
func (s *PetService) find(ctx context.Context, id uint, ownerID string) (*models.Pet, error) {
	pet, err := s.pets.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return pet, nil
}

func (s *PetService) owner(ctx context.Context, principal string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerMissing
		}
		return nil, err
	}
	return user, nil
}
