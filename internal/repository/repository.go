// Package repository defines the persistence ports for credentials,
// roles and pets. The postgres package implements them over gorm; the
// memory package provides an in-process implementation for tests.
package repository

import (
	"context"
	"errors"

	"fitpet/internal/models"
)

// ErrNotFound is returned when a lookup matches no record. Ownership
// mismatches surface as this same error so callers cannot probe ids.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint,
// such as two registrations racing on the same username.
var ErrDuplicate = errors.New("duplicate record")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByUsername loads the user and their roles.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*models.Role, error)
	// EnsureExists creates the role if absent; re-running is a no-op.
	EnsureExists(ctx context.Context, name string) error
}

type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	// ListByOwner returns the owner's pets, optionally narrowed to an
	// exact species match when species is non-empty.
	ListByOwner(ctx context.Context, ownerID, species string) ([]models.Pet, error)
	FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, pet *models.Pet) error
}
