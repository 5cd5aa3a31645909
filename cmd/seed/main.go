package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"exam-admin/cmd/seed/internal/seedmodels"
	"exam-admin/internal/config"
	"exam-admin/internal/database"
	"exam-admin/internal/domain"
	"exam-admin/internal/logger"
	"exam-admin/internal/repository"
	"exam-admin/internal/service"
	"exam-admin/internal/validation"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/initial_exams.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path of the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not initialized yet.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}
	dsn, err := cfg.GetDSN()
	if err != nil {
		log.Fatal("Invalid database configuration", zap.Error(err))
	}

	log.Info("Starting initial data seeding process...")
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := database.NewSQLXPostgresDB(connectCtx, dsn, cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}
	var seedOrganizations []seedmodels.SeedOrganization
	if err := json.Unmarshal(byteValue, &seedOrganizations); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("organizations_loaded", len(seedOrganizations)))

	// The seeder writes through the services so fixtures get the same validation as API calls.
	// No response cache is attached; a running API drops its aggregates when their TTL expires.
	txManager := repository.NewTransactionManagerAdapter(db)
	validator := validation.NewValidator()
	orgRepo := repository.NewOrganizationRepository(db)
	examRepo := repository.NewExamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	s := &seeder{
		organizations: service.NewOrganizationService(orgRepo, txManager, validator, nil),
		exams:         service.NewExamService(examRepo, questionRepo, txManager, validator, nil),
		questions:     service.NewQuestionService(questionRepo, validator, nil),
		log:           log,
	}

	failed := 0
	for _, so := range seedOrganizations {
		if err := s.seedOrganization(ctx, so); err != nil {
			failed++
			if domain.IsCode(err, domain.CodeValidation) {
				log.Error("Seed fixture rejected", zap.Error(err), zap.Strings("errors", domain.ValidationMessages(err)))
				continue
			}
			log.Error("Error seeding organization", zap.Error(err))
		}
	}
	if failed > 0 {
		log.Fatal("Initial data seeding finished with errors", zap.Int("failed_organizations", failed))
	}
	log.Info("Initial data seeding process completed.")
}
