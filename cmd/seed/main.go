// Seed prepares a fresh NoteBuddy database: schema, the two fixed roles, and
// the bootstrap admin account.
package main

import (
	"context"
	"log"

	"github.com/s5redllms/NoteBuddy/internal/config"
	"github.com/s5redllms/NoteBuddy/internal/db"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	if err := db.Seed(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	roles, err := repository.NewRoleRepository(gormDB).List(ctx)
	if err != nil {
		log.Fatalf("Failed to list roles: %v", err)
	}
	for _, role := range roles {
		log.Printf("  - role %d: %s (%s)", role.ID, role.Name, role.Description)
	}

	users, err := repository.NewUserRepository(gormDB).Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	log.Printf("Seed completed successfully! %d user(s) in database", users)
}
