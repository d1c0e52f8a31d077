// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	"opsboard/backend/internal/config"
	"opsboard/backend/internal/db"
	identityrepo "opsboard/backend/internal/identity/repository"
	identityservice "opsboard/backend/internal/identity/service"
	"opsboard/backend/internal/platform/scope"
	prospectrepo "opsboard/backend/internal/prospect/repository"
	prospectservice "opsboard/backend/internal/prospect/service"
	"opsboard/backend/internal/security"
	taskrepo "opsboard/backend/internal/task/repository"
	taskservice "opsboard/backend/internal/task/service"
	userdomain "opsboard/backend/internal/user/domain"
	userrepo "opsboard/backend/internal/user/repository"
)

const (
	devUserEmail = "dev@example.com"
	devPassword  = "password123"
)

var devProspects = []prospectservice.CreateInput{
	{Name: "Dana Whitfield", Company: "Northwind Traders", Email: "dana@northwind.example", Stage: "qualified"},
	{Name: "Rui Costa", Company: "Blue Harbor Studio", Stage: "proposal", Notes: "Sent draft on Monday"},
	{Name: "Priya Nair", Company: "Lumen Health", Stage: "lead"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	creds := identityservice.NewCredentialStore(
		identityrepo.NewPostgresRepository(conn),
		userrepo.NewPostgresRepository(conn),
		security.NewHasher(cfg.BcryptCost),
	)
	existing, err := creds.FindByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (dev@example.com exists). Skipping.")
		return
	}

	u, err := creds.Create(ctx, identityservice.CreateParams{
		Email:        devUserEmail,
		Password:     devPassword,
		Name:         "Dev User",
		ActiveModule: userdomain.DefaultModule,
	})
	if err != nil {
		log.Fatalf("create dev user: %v", err)
	}

	owner, err := scope.Require(scope.WithOwner(ctx, u.ID))
	if err != nil {
		log.Fatalf("scope: %v", err)
	}

	prospects := prospectservice.NewService(prospectrepo.NewPostgresRepository(conn))
	for _, in := range devProspects {
		if _, err := prospects.Create(ctx, owner, in); err != nil {
			log.Fatalf("create prospect %q: %v", in.Name, err)
		}
	}

	tasks := taskservice.NewService(taskrepo.NewPostgresRepository(conn))
	cat, err := tasks.CreateCategory(ctx, owner, "Follow-ups")
	if err != nil {
		log.Fatalf("create task category: %v", err)
	}
	due := time.Now().UTC().AddDate(0, 0, 3).Truncate(24 * time.Hour)
	for _, in := range []taskservice.CreateInput{
		{Title: "Send proposal to Blue Harbor", CategoryID: cat.ID, Priority: "high", DueDate: &due},
		{Title: "Book intro call with Lumen Health", CategoryID: cat.ID},
		{Title: "Tidy up CRM notes", Priority: "low"},
	} {
		if _, err := tasks.Create(ctx, owner, in); err != nil {
			log.Fatalf("create task %q: %v", in.Title, err)
		}
	}

	log.Printf("Seed complete. Log in as %s / %s", devUserEmail, devPassword)
}
