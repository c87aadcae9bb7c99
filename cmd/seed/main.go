package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"storewatch/internal/config"
	"storewatch/internal/db"
	"storewatch/internal/importer"
	"storewatch/internal/model"
	"storewatch/internal/repository"
	"storewatch/internal/service"
)

func main() {
	adminEmail := flag.String("admin-email", "", "create an ADMIN user with this email")
	adminPassword := flag.String("admin-password", "", "password for -admin-email")
	adminUsername := flag.String("admin-username", "admin", "username for -admin-email")
	footfall := flag.String("footfall", "", "import footfall and violation rows from this .xlsx workbook")
	flag.Parse()

	if *adminEmail == "" && *footfall == "" {
		flag.Usage()
		log.Fatal("nothing to seed: pass -admin-email and/or -footfall")
	}

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Connected to %s database", cfg.DBDriver)

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("-admin-password is required with -admin-email")
		}
		if err := seedAdmin(ctx, service.NewAuthService(userRepo, nil, nil), *adminEmail, *adminPassword, *adminUsername); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
	}

	if *footfall != "" {
		log.Printf("Reading workbook: %s", *footfall)
		batch, err := importer.ReadFile(*footfall)
		if err != nil {
			log.Fatalf("Failed to read workbook: %v", err)
		}

		res, err := service.NewImportService(repository.NewTransactor(gormDB), nil).Import(ctx, batch)
		if err != nil {
			log.Fatalf("Failed to import workbook: %v", err)
		}
		log.Printf("Seed completed successfully!")
		log.Printf("  - customer_footfall rows: %d", res.Customers)
		log.Printf("  - employee_footfall rows: %d", res.Employees)
		log.Printf("  - critical_violations rows: %d", res.Violations)
	}
}

// seedAdmin creates the admin user, leaving an existing account untouched.
func seedAdmin(ctx context.Context, auth service.AuthService, email, password, username string) error {
	user, err := auth.Register(ctx, email, password, username, model.RoleAdmin)
	if errors.Is(err, service.ErrUserAlreadyExists) {
		log.Printf("Admin %s already exists, skipping", email)
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("Admin user created: %s (%s)", user.Email, user.ID)
	return nil
}
