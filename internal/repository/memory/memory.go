// Package memory implements the repository ports with plain in-process
// maps. It backs the test suite; production boots the postgres package.
package memory

import (
	"context"
	"sync"

	"fitpet/internal/models"
	"fitpet/internal/repository"
)

// Store holds every table behind one mutex. Records are copied in and
// out so callers never share memory with the store.
type Store struct {
	mu        sync.Mutex
	roles     map[string]models.Role
	users     map[string]models.User // keyed by username
	pets      map[uint]models.Pet
	nextRole  int
	nextPetID uint
}

func NewStore() *Store {
	return &Store{
		roles: make(map[string]models.Role),
		users: make(map[string]models.User),
		pets:  make(map[uint]models.Pet),
	}
}

func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }
func (s *Store) Roles() repository.RoleRepository { return (*roleRepo)(s) }
func (s *Store) Pets() repository.PetRepository   { return (*petRepo)(s) }

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	s.users[user.Username] = cloneUser(*user)
	return nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneUser(u)
	return &c, nil
}

func (r *userRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok, nil
}

func (r *userRepo) List(_ context.Context) ([]models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

type roleRepo Store

func (r *roleRepo) FindByName(_ context.Context, name string) (*models.Role, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	role, ok := s.roles[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := role
	return &c, nil
}

func (r *roleRepo) EnsureExists(_ context.Context, name string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[name]; ok {
		return nil
	}
	s.nextRole++
	s.roles[name] = models.Role{ID: s.nextRole, Name: name}
	return nil
}

type petRepo Store

func (r *petRepo) Create(_ context.Context, pet *models.Pet) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPetID++
	pet.ID = s.nextPetID
	s.pets[pet.ID] = *pet
	return nil
}

func (r *petRepo) ListByOwner(_ context.Context, ownerID, species string) ([]models.Pet, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	pets := make([]models.Pet, 0)
	for _, p := range s.pets {
		if p.OwnerID != ownerID {
			continue
		}
		if species != "" && p.Species != species {
			continue
		}
		pets = append(pets, p)
	}
	return pets, nil
}

func (r *petRepo) FindByIDAndOwner(_ context.Context, id uint, ownerID string) (*models.Pet, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[id]
	if !ok || p.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	c := p
	return &c, nil
}

func (r *petRepo) Update(_ context.Context, pet *models.Pet) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[pet.ID]; !ok {
		return repository.ErrNotFound
	}
	s.pets[pet.ID] = *pet
	return nil
}

func (r *petRepo) Delete(_ context.Context, pet *models.Pet) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[pet.ID]; !ok {
		return repository.ErrNotFound
	}
	delete(s.pets, pet.ID)
	return nil
}

func cloneUser(u models.User) models.User {
	c := u
	c.Roles = append([]models.Role(nil), u.Roles...)
	return c
}
