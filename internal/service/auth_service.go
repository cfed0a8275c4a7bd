package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitpet/internal/auth"
	"fitpet/internal/models"
	"fitpet/internal/repository"
)

// AuthService registers credentials and issues bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	tokens *auth.Tokens
	lg     *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, tokens *auth.Tokens, lg *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, lg: lg}
}

// NormalizeEmail trims and lower-cases an email so that lookup and
// duplicate detection are case/whitespace-insensitive on the identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisteredUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register creates a credential with the default role. The password
// arrives already policy-checked by the validation layer.
func (s *AuthService) Register(ctx context.Context, email, password string) (*RegisteredUser, error) {
	username := NormalizeEmail(email)

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// Resolve by name, never by a magic id. Absence means the catalog
	// was not seeded.
	role, err := s.roles.FindByName(ctx, models.RoleUser)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRoleMissing, models.RoleUser)
		}
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Roles:        []models.Role{*role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A registration racing past the existence check loses here on
		// the unique index; report it the same way as a plain duplicate.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.lg.Infow("user registered", "username", username)
	return &RegisteredUser{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt}, nil
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	username := NormalizeEmail(email)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	roleNames := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roleNames = append(roleNames, r.Name)
	}
	return s.tokens.Sign(user.Username, roleNames)
}

// TokenTTL is the fixed lifetime of issued tokens, for the expiresIn
// field of the login response.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

// ListUsers backs the admin-only user listing.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
