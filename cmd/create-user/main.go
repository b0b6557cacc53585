package main

import (
	"context"
	"flag"
	"log"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"
	"go-fuelstation/internal/service"
	"go-fuelstation/pkg/config"
	"go-fuelstation/pkg/database"
	"go-fuelstation/pkg/jwt"
)

func main() {
	username := flag.String("username", "admin", "login name")
	password := flag.String("password", "", "password (stored as given)")
	role := flag.String("role", string(model.RoleAdmin), "ADMIN or OPERATOR")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// 3. Register
	sessions := service.NewSessionService(
		repository.NewCredentialRepo(db),
		jwt.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		nil,
	)

	credential, err := sessions.Register(context.Background(), *username, *password, model.Role(*role))
	if err != nil {
		log.Fatalf("failed to create user %s: %v", *username, err)
	}

	log.Printf("created user %s (id %d, role %s)", credential.Username, credential.ID, credential.Role)
}
