package main

import (
	"log"

	api "crm-backend/cmd/api"
	authdomain "crm-backend/internal/auth/domain"
	authRepo "crm-backend/internal/auth/repository"
	authUsecase "crm-backend/internal/auth/usecase"
	crmDelivery "crm-backend/internal/crm/delivery"
	crmdomain "crm-backend/internal/crm/domain"
	crmRepo "crm-backend/internal/crm/repository"
	emailsyncdomain "crm-backend/internal/emailsync/domain"
	syncRepo "crm-backend/internal/emailsync/repository"
	syncUsecase "crm-backend/internal/emailsync/usecase"
	"crm-backend/pkg/ai"
	"crm-backend/pkg/config"
	"crm-backend/pkg/database"
	"crm-backend/pkg/gmail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&crmdomain.Contact{},
		&crmdomain.Deal{},
		&crmdomain.Investor{},
		&emailsyncdomain.EmailAccount{},
		&emailsyncdomain.EmailSummary{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	contactRepo := crmRepo.NewContactRepository(db)
	dealRepo := crmRepo.NewDealRepository(db)
	investorRepo := crmRepo.NewInvestorRepository(db)
	accountRepo := syncRepo.NewEmailAccountRepository(db)
	summaryRepo := syncRepo.NewEmailSummaryRepository(db)

	// Initialize Gmail service (token refresh + metadata fetch)
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)

	// Initialize AI summarizer
	summarizer, err := ai.NewSummarizer(ai.Config{GeminiAPIKey: cfg.GeminiAPIKey})
	if err != nil {
		log.Fatal("Failed to initialize AI summarizer:", err)
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	tokenManager := syncUsecase.NewTokenManager(gmailService, accountRepo)
	matcher := syncUsecase.NewKeywordMatcher(contactRepo, dealRepo, investorRepo)
	syncUsecaseInstance := syncUsecase.NewSyncUsecase(accountRepo, summaryRepo, tokenManager, gmailService, matcher, summarizer)

	// Initialize HTTP handler
	crmHandler := crmDelivery.NewCRMHandler(contactRepo, dealRepo, investorRepo)
	handler := api.NewHandler(authUsecaseInstance, syncUsecaseInstance, crmHandler, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
