package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fitpet/internal/auth"
	"fitpet/internal/config"
	"fitpet/internal/httpserver"
	"fitpet/internal/logger"
	"fitpet/internal/models"
	"fitpet/internal/repository"
	pgrepo "fitpet/internal/repository/postgres"
	"fitpet/internal/service"
	"fitpet/internal/validate"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.Pet{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}

	users := pgrepo.NewUserRepo(db)
	roles := pgrepo.NewRoleRepo(db)
	pets := pgrepo.NewPetRepo(db)

	// Roles must exist before traffic is accepted; registration resolves
	// ROLE_USER by name and treats its absence as fatal.
	seedRoles(ctx, roles, lg)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	router := httpserver.NewRouter(httpserver.Deps{
		Auth:      service.NewAuthService(users, roles, tokens, lg),
		Pets:      service.NewPetService(pets, users, lg),
		Tokens:    tokens,
		Validator: validate.New(),
		Log:       lg,
		Base:      cfg.APIBase,
	})

	lg.Infow("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}

func seedRoles(ctx context.Context, roles repository.RoleRepository, lg *zap.SugaredLogger) {
	for _, name := range []string{models.RoleUser, models.RoleAdmin} {
		if err := roles.EnsureExists(ctx, name); err != nil {
			lg.Fatalw("role seeding failed", "role", name, "error", err)
		}
	}
	lg.Infow("roles seeded", "roles", []string{models.RoleUser, models.RoleAdmin})
}
