package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"landscout-backoffice/internal/handlers"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/services"
	"landscout-backoffice/internal/transformers"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/config"
	"landscout-backoffice/pkg/database"
	"landscout-backoffice/pkg/dedupe"
	"landscout-backoffice/pkg/gis"
	"landscout-backoffice/pkg/logger"
	"landscout-backoffice/pkg/metrics"
)

// App represents the application structure
type App struct {
	Config             *config.Config
	Router             *gin.Engine
	Cache              *cache.Cache
	Dedupe             *dedupe.Deduplicator
	GISHandler         *handlers.GISScraperHandler
	CRMHandler         *handlers.CRMHandler
	LeadHandler        *handlers.LeadHandler
	TransactionHandler *handlers.TransactionHandler
	MileageHandler     *handlers.MileageHandler
	InventoryHandler   *handlers.InventoryHandler
	UserHandler        *handlers.UserHandler
	RateLimiter        *middleware.RateLimiter
	Server             *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.URI, a.Config.Database.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the in-process cache and request deduplicator
func (a *App) initializeCache() {
	a.Cache = cache.New(a.Config.DefaultTTL())
	a.Dedupe = dedupe.New()
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	scrapedRepo := repositories.NewScrapedPropertyRepository()
	savedRepo := repositories.NewSavedPropertyRepository()
	customerRepo := repositories.NewCustomerRepository()
	interactionRepo := repositories.NewInteractionRepository()
	leadRepo := repositories.NewLeadRepository()
	transactionRepo := repositories.NewTransactionRepository()
	recurringRepo := repositories.NewRecurringPaymentRepository()
	mileageRepo := repositories.NewMileageRepository()
	inventoryRepo := repositories.NewInventoryRepository()
	userRepo := repositories.NewUserRepository()
	orgRepo := repositories.NewOrganizationRepository()

	// transformers
	propTrans := transformers.NewPropertyTransformer()
	leadTrans := transformers.NewLeadTransformer()

	// validators
	scrapeValidator := validators.NewScrapeValidator()
	recordValidator := validators.NewRecordValidator()
	userValidator := validators.NewUserValidator()

	// GIS client
	gisClient := gis.NewClient(a.Config.GIS.BaseURL, a.Config.GIS.UserAgent, a.Config.RequestTimeout(), a.Config.GIS.MaxPages)

	// services
	crmService := services.NewCRMDataService(customerRepo, interactionRepo, recordValidator, a.Cache, a.Dedupe)
	leadService := services.NewLeadDataService(leadRepo, recordValidator, a.Cache, a.Dedupe)
	transactionService := services.NewTransactionDataService(transactionRepo, recurringRepo, recordValidator, a.Cache, a.Dedupe)
	mileageService := services.NewMileageService(mileageRepo, recordValidator)
	inventoryService := services.NewInventoryService(inventoryRepo, recordValidator)
	lifecycleService := services.NewPropertyLifecycleService(scrapedRepo, savedRepo, leadRepo, orgRepo, propTrans, leadTrans, leadService)
	scrapeService := services.NewScrapeService(gisClient, lifecycleService, scrapeValidator)
	userService := services.NewUserService(userRepo, orgRepo, userValidator, a.Config.JWT.Secret)

	// handlers
	a.GISHandler = handlers.NewGISScraperHandler(scrapeService, lifecycleService)
	a.CRMHandler = handlers.NewCRMHandler(crmService)
	a.LeadHandler = handlers.NewLeadHandler(leadService)
	a.TransactionHandler = handlers.NewTransactionHandler(transactionService)
	a.MileageHandler = handlers.NewMileageHandler(mileageService)
	a.InventoryHandler = handlers.NewInventoryHandler(inventoryService)
	a.UserHandler = handlers.NewUserHandler(userService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
}
