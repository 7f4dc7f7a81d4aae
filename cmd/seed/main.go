package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/oksasatya/edupath/config"
	"github.com/oksasatya/edupath/internal/domain/entity"
	repo "github.com/oksasatya/edupath/internal/domain/repository"
	pginfra "github.com/oksasatya/edupath/internal/infrastructure/postgres"
	"github.com/oksasatya/edupath/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	email := "demo@edupath.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	u := &entity.User{Email: email, Password: hash}
	switch err := users.Create(ctx, u); {
	case errors.Is(err, repo.ErrDuplicate):
		existing, err := users.GetByEmail(ctx, email)
		if err != nil {
			logger.Fatalf("failed to load seeded user: %v", err)
		}
		u = existing
		fmt.Printf("user already seeded: id=%d email=%s\n", u.ID, u.Email)
	case err != nil:
		logger.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%d email=%s password=%s\n", u.ID, u.Email, password)
	}
}
