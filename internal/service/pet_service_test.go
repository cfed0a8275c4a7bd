package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitpet/internal/models"
	"fitpet/internal/repository/memory"
	"fitpet/internal/service"
)

func newPetService(t *testing.T, owners ...string) (*service.PetService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Roles().EnsureExists(ctx, models.RoleUser))
	for i, username := range owners {
		require.NoError(t, store.Users().Create(ctx, &models.User{
			ID:           username + "-id",
			Username:     username,
			PasswordHash: "x",
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Second),
		}))
	}
	return service.NewPetService(store.Pets(), store.Users(), zap.NewNop().Sugar()), store
}

func petInput(name, species string) service.PetInput {
	return service.PetInput{
		Name:      name,
		Species:   species,
		Breed:     "mixed",
		Sex:       "female",
		BirthDate: time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC),
		WeightKg:  6.2,
	}
}

func TestPetCreateTrimsAndAssignsOwner(t *testing.T) {
	svc, _ := newPetService(t, "owner@example.com")
	ctx := context.Background()

	pet, err := svc.Create(ctx, "owner@example.com", service.PetInput{
		Name:      "  Luna ",
		Species:   " cat ",
		Breed:     "  siamese",
		Sex:       "female ",
		BirthDate: time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC),
		WeightKg:  4.1,
		ImageURL:  " https://cdn.example.com/luna.png ",
	})
	require.NoError(t, err)

	assert.NotZero(t, pet.ID)
	assert.Equal(t, "owner@example.com-id", pet.OwnerID)
	assert.Equal(t, "Luna", pet.Name)
	assert.Equal(t, "cat", pet.Species)
	assert.Equal(t, "siamese", pet.Breed)
	assert.Equal(t, "female", pet.Sex)
	assert.Equal(t, "https://cdn.example.com/luna.png", pet.ImageURL)
}

func TestPetCreateUnknownPrincipal(t *testing.T) {
	svc, _ := newPetService(t, "owner@example.com")

	_, err := svc.Create(context.Background(), "ghost@example.com", petInput("Luna", "cat"))
	assert.ErrorIs(t, err, service.ErrOwnerMissing)
}

func TestPetListIsOwnerScoped(t *testing.T) {
	svc, _ := newPetService(t, "a@example.com", "b@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, "a@example.com", petInput("Luna", "cat"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "a@example.com", petInput("Rex", "dog"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "b@example.com", petInput("Milo", "cat"))
	require.NoError(t, err)

	pets, err := svc.List(ctx, "a@example.com", "")
	require.NoError(t, err)
	assert.Len(t, pets, 2)

	// Species filter is an exact trimmed match.
	cats, err := svc.List(ctx, "a@example.com", " cat ")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Luna", cats[0].Name)

	// Zero pets is an empty list, not an error.
	none, err := svc.List(ctx, "b@example.com", "parrot")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPetGetCrossOwnerReadsAsMissing(t *testing.T) {
	svc, _ := newPetService(t, "a@example.com", "b@example.com")
	ctx := context.Background()

	pet, err := svc.Create(ctx, "a@example.com", petInput("Luna", "cat"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "a@example.com", pet.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.ID, got.ID)

	_, err = svc.Get(ctx, "b@example.com", pet.ID)
	assert.ErrorIs(t, err, service.ErrPetNotFound)

	_, err = svc.Get(ctx, "a@example.com", 9999)
	assert.ErrorIs(t, err, service.ErrPetNotFound)
}

func TestPetUpdateReplacesFieldsKeepsOwner(t *testing.T) {
	svc, _ := newPetService(t, "a@example.com", "b@example.com")
	ctx := context.Background()

	pet, err := svc.Create(ctx, "a@example.com", petInput("Luna", "cat"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "a@example.com", pet.ID, service.PetInput{
		Name:      " Nube ",
		Species:   "cat",
		Breed:     "persian",
		Sex:       "female",
		BirthDate: time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		WeightKg:  5.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nube", updated.Name)
	assert.Equal(t, "persian", updated.Breed)
	assert.Equal(t, pet.OwnerID, updated.OwnerID)

	// Another owner updating the same id reads as missing.
	_, err = svc.Update(ctx, "b@example.com", pet.ID, petInput("Stolen", "cat"))
	assert.ErrorIs(t, err, service.ErrPetNotFound)
}

func TestPetDeleteSecondDeleteIsNotFound(t *testing.T) {
	svc, _ := newPetService(t, "a@example.com", "b@example.com")
	ctx := context.Background()

	pet, err := svc.Create(ctx, "a@example.com", petInput("Luna", "cat"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "b@example.com", pet.ID), service.ErrPetNotFound)
	require.NoError(t, svc.Delete(ctx, "a@example.com", pet.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "a@example.com", pet.ID), service.ErrPetNotFound)
}
