package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitpet/internal/models"
	"fitpet/internal/repository"
)

type RoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepo) EnsureExists(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).FirstOrCreate(&models.Role{}, models.Role{Name: name}).Error
}
