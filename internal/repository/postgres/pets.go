package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitpet/internal/models"
	"fitpet/internal/repository"
)

type PetRepo struct {
	db *gorm.DB
}

func NewPetRepo(db *gorm.DB) *PetRepo {
	return &PetRepo{db: db}
}

func (r *PetRepo) Create(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerID, species string) ([]models.Pet, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if species != "" {
		q = q.Where("species = ?", species)
	}
	var pets []models.Pet
	err := q.Order("created_at desc").Find(&pets).Error
	return pets, err
}

func (r *PetRepo) FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.WithContext(ctx).First(&pet, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepo) Update(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *PetRepo) Delete(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Delete(pet).Error
}
