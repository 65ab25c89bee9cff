package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cyphera/cyphera-expense/apps/api/handlers"
	awsclient "github.com/cyphera/cyphera-expense/libs/go/client/aws"
	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/middleware"
	"github.com/cyphera/cyphera-expense/libs/go/services"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// maxRequestBodyBytes bounds calculation and reconciliation payloads
const maxRequestBodyBytes = 1 << 20

// Handler Definitions
var (
	healthHandler          *handlers.HealthHandler
	expenseDocumentHandler *handlers.ExpenseDocumentHandler
	expensePaymentHandler  *handlers.ExpensePaymentHandler
	sequentialHandler      *handlers.SequentialHandler

	// Database
	dbQueries *db.Queries

	// Services
	commonServices   *handlers.CommonServices
	invoiceSequence  *services.SequenceTracker
	sequenceListener *awsclient.SequenceListener
	apiRateLimiter   = middleware.NewRateLimiter(100, 200)

	stage string
)

func InitializeHandlers() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	var valid bool
	stage, valid = helpers.StageFromEnv()
	if !valid {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := secretsClient.GetSecretString(ctx, constants.EnvDatabaseSecretARN, constants.EnvDatabaseURL)
	if err != nil {
		logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
	}

	dbpool, err := newPool(ctx, dsn)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	dbQueries = db.New(dbpool)

	if queueURL := os.Getenv(constants.EnvSequenceQueueURL); queueURL != "" {
		if err := initializeSequenceListener(ctx, queueURL); err != nil {
			logger.Warn("Live invoice sequence disabled; sequentials will be read from the store", zap.Error(err))
		}
	}

	var source *services.SequenceTracker
	if sequenceListener != nil {
		source = invoiceSequence
	}
	initializeWithCommon(handlers.NewCommonServicesWithQuerier(dbQueries, sequenceSourceOrNil(source)))
}

// initializeWithCommon builds every handler over a prepared service graph
func initializeWithCommon(common *handlers.CommonServices) {
	commonServices = common
	healthHandler = handlers.NewHealthHandler()
	expenseDocumentHandler = handlers.NewExpenseDocumentHandler(common)
	expensePaymentHandler = handlers.NewExpensePaymentHandler(common)
	sequentialHandler = handlers.NewSequentialHandler(common)
}

func newPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse database DSN")
	}

	// Reference data only; a small pool is enough.
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool with config")
	}
	return pool, nil
}

// initializeSequenceListener seeds the live invoice sequence from the store
// and prepares the queue listener that keeps it current
func initializeSequenceListener(ctx context.Context, queueURL string) error {
	sequentialService := services.NewSequentialService(dbQueries)
	seq, err := sequentialService.GetConfig(ctx, constants.ExpenseInvoiceSequenceConfigKey)
	if err != nil {
		return errors.Wrap(err, "failed to seed invoice sequence")
	}
	invoiceSequence = services.NewSequenceTracker(seq)

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to load AWS SDK config")
	}

	sequenceListener = awsclient.NewSequenceListener(
		sqs.NewFromConfig(awsCfg),
		invoiceSequence,
		awsclient.DefaultSequenceListenerConfig(queueURL),
	)
	logger.Info("Live invoice sequence enabled",
		zap.String("queue_url", queueURL),
		zap.Int("next", seq.Next))
	return nil
}

// sequenceSourceOrNil keeps a nil tracker from becoming a non-nil interface
func sequenceSourceOrNil(tracker *services.SequenceTracker) interfaces.SequenceSource {
	if tracker == nil {
		return nil
	}
	return tracker
}

// StartBackgroundWorkers runs the sequence listener and the rate limiter
// cleanup until ctx is done
func StartBackgroundWorkers(ctx context.Context) {
	apiRateLimiter.StartCleanup(ctx)

	if sequenceListener == nil {
		return
	}
	go func() {
		if err := sequenceListener.Run(ctx); err != nil {
			logger.Error("Sequence listener stopped with error", zap.Error(err))
		}
	}()
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(apiRateLimiter.Middleware())
	router.Use(middleware.RequestLoggingMiddleware(stage == helpers.StageLocal))
	router.Use(middleware.MaxBodySizeMiddleware(maxRequestBodyBytes))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		expenseInvoices := v1.Group("/expense-invoices")
		{
			expenseInvoices.POST("/calculate", expenseDocumentHandler.CalculateExpenseInvoice)
			expenseInvoices.POST("/validate", expenseDocumentHandler.ValidateExpenseInvoice)
		}

		expenseQuotations := v1.Group("/expense-quotations")
		{
			expenseQuotations.POST("/calculate", expenseDocumentHandler.CalculateExpenseQuotation)
			expenseQuotations.POST("/validate", expenseDocumentHandler.ValidateExpenseQuotation)
			expenseQuotations.GET("/lifecycle", expenseDocumentHandler.QuotationLifecycle)
		}

		expensePayments := v1.Group("/expense-payments")
		{
			expensePayments.POST("/reconcile", expensePaymentHandler.ReconcileExpensePayment)
			expensePayments.GET("/candidate-invoices", expensePaymentHandler.ListCandidateInvoices)
		}

		sequentials := v1.Group("/sequentials")
		{
			sequentials.GET("/expense-invoice", sequentialHandler.GetExpenseInvoiceSequential)
			sequentials.GET("/expense-quotation", sequentialHandler.GetExpenseQuotationSequential)
			sequentials.POST("/format", sequentialHandler.FormatSequential)
			sequentials.POST("/parse", sequentialHandler.ParseSequential)
		}
	}
}

func splitEnvList(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	values := strings.Split(raw, ",")
	for i, value := range values {
		values[i] = strings.TrimSpace(value)
	}
	return values
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnvList(constants.EnvCORSOrigins, []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnvList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnvList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = splitEnvList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
