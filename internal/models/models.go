package models

import (
	"time"

	"gorm.io/datatypes"
)

// Seeded role names. Registration always resolves RoleUser by name,
// never by id.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type Role struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// User is the credential record. Username is the normalized email and is
// the principal identifier everywhere; there is no separate display name.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Roles        []Role    `gorm:"many2many:user_roles" json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Pet belongs to exactly one owner and is never reassigned.
type Pet struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   string         `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner     User           `gorm:"foreignKey:OwnerID" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Species   string         `gorm:"not null" json:"species"`
	Breed     string         `gorm:"not null" json:"breed"`
	Sex       string         `gorm:"not null" json:"sex"`
	BirthDate datatypes.Date `gorm:"not null" json:"birth_date"`
	WeightKg  float64        `gorm:"not null" json:"weight_kg"`
	ImageURL  string         `json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
