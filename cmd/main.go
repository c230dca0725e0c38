package main

import (
	"context"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/middleware"
	"barangay-mancruz-backend/seeds"
	"barangay-mancruz-backend/tasks"
	"barangay-mancruz-backend/utils"

	// Repositories
	lookups_repositories "barangay-mancruz-backend/lookups/repositories"
	reports_repositories "barangay-mancruz-backend/reports/repositories"

	// Routes
	lookup_routes "barangay-mancruz-backend/lookups/routes"
	report_routes "barangay-mancruz-backend/reports/routes"

	// bleve
	bleveControllers "barangay-mancruz-backend/bleve/controllers"
	bleveRepositories "barangay-mancruz-backend/bleve/repositories"
	bleveRoutes "barangay-mancruz-backend/bleve/routes"
	bleveServices "barangay-mancruz-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // three 5 MiB images plus form fields
	})

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisAddr := config.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")
	redisClient := config.InitRedisServer(ctx)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	// In-process worker for confirmation emails
	asynqServer := tasks.StartWorker(asynqRedisOpt)
	defer asynqServer.Shutdown()

	indexPath := config.GetEnvOrDefault("BLEVE_INDEX_PATH", "./bleve_data")
	baseURL := config.GetEnvOrDefault("BASE_URL", "http://localhost:8080")

	// Initialize the mailer
	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	// Serve static files
	app.Static("/public", "./public")
	app.Static("/uploads", "./uploads")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	complaintRepo := reports_repositories.NewComplaintRepository(db)
	incidentRepo := reports_repositories.NewIncidentRepository(db)
	attachmentRepo := reports_repositories.NewAttachmentRepository(db)
	activityRepo := reports_repositories.NewActivityLogRepository(db)
	lookupRepo := lookups_repositories.NewLookupRepository(db)

	fileStorage := utils.NewLocalFileStorage("./uploads", baseURL)

	// Routes
	report_routes.ReportRouterInit(app, complaintRepo, incidentRepo, attachmentRepo, activityRepo, fileStorage, asynqClient, bleveInterfaceRepo)
	lookup_routes.LookupRouterInit(app, lookupRepo, redisClient)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveServiceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController)

	// Rebuild the search index from the database on startup
	go reindexReports(complaintRepo, incidentRepo, bleveInterfaceRepo)

	// Background cleanup tasks
	go utils.RunScheduledCleanup(redisClient)

	// Seed reference data
	if err := seeds.SeedAll(db); err != nil {
		config.Logger.Error("Database seeding failed", zap.Error(err))
	}

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

// reindexReports rebuilds the full-text index from the database. The index is
// disposable; the database is always the source of truth.
func reindexReports(
	complaintRepo reports_repositories.ComplaintRepository,
	incidentRepo reports_repositories.IncidentRepository,
	bleveRepo bleveRepositories.ReportIndexRepositoryInterface,
) {
	complaints, _, err := complaintRepo.GetFilteredComplaints(reports_repositories.ReportFilters{}, false, 0, 0)
	if err != nil {
		config.Logger.Error("Failed to load complaints for reindexing", zap.Error(err))
	} else if err := bleveRepo.IndexExistingComplaints(complaints); err != nil {
		config.Logger.Error("Failed to reindex complaints", zap.Error(err))
	}

	incidents, _, err := incidentRepo.GetFilteredIncidents(reports_repositories.ReportFilters{}, false, 0, 0)
	if err != nil {
		config.Logger.Error("Failed to load incidents for reindexing", zap.Error(err))
	} else if err := bleveRepo.IndexExistingIncidents(incidents); err != nil {
		config.Logger.Error("Failed to reindex incidents", zap.Error(err))
	}
}
