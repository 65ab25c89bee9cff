package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/middleware"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db                     db.Querier
	logger                 *zap.Logger
	CurrencyService        interfaces.CurrencyService
	ExpenseDocumentService interfaces.ExpenseDocumentService
	ExpensePaymentService  interfaces.ExpensePaymentService
	ValidationService      interfaces.ValidationService
	SequentialService      interfaces.SequentialService
	LifecycleService       *services.LifecycleService
	// InvoiceSequence is the live invoice numbering scheme; nil when no
	// sequence queue is configured.
	InvoiceSequence interfaces.SequenceSource
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB                     db.Querier
	Logger                 *zap.Logger
	CurrencyService        interfaces.CurrencyService
	ExpenseDocumentService interfaces.ExpenseDocumentService
	ExpensePaymentService  interfaces.ExpensePaymentService
	ValidationService      interfaces.ValidationService
	SequentialService      interfaces.SequentialService
	LifecycleService       *services.LifecycleService
	InvoiceSequence        interfaces.SequenceSource
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.WithComponent(logger.ComponentAPI)
	}
	if config.LifecycleService == nil {
		config.LifecycleService = services.NewLifecycleService()
	}

	return &CommonServices{
		db:                     config.DB,
		logger:                 config.Logger,
		CurrencyService:        config.CurrencyService,
		ExpenseDocumentService: config.ExpenseDocumentService,
		ExpensePaymentService:  config.ExpensePaymentService,
		ValidationService:      config.ValidationService,
		SequentialService:      config.SequentialService,
		LifecycleService:       config.LifecycleService,
		InvoiceSequence:        config.InvoiceSequence,
	}
}

// NewCommonServicesWithQuerier wires the default service graph over a querier
func NewCommonServicesWithQuerier(queries db.Querier, invoiceSequence interfaces.SequenceSource) *CommonServices {
	log := logger.WithComponent(logger.ComponentAPI)

	currencyService := services.NewCurrencyService()
	discountService := services.NewDiscountService()
	taxService := services.NewTaxService()
	validationService := services.NewValidationService()

	return NewCommonServices(CommonServicesConfig{
		DB:              queries,
		Logger:          log,
		CurrencyService: currencyService,
		ExpenseDocumentService: services.NewExpenseDocumentService(
			queries,
			logger.WithComponent(logger.ComponentCalculation),
			currencyService,
			taxService,
			services.NewArticleEntryCalculator(discountService, taxService),
			services.NewDocumentTotalCalculator(discountService),
		),
		ExpensePaymentService: services.NewExpensePaymentService(
			queries,
			logger.WithComponent(logger.ComponentReconciliation),
			currencyService,
			validationService,
		),
		ValidationService: validationService,
		SequentialService: services.NewSequentialService(queries),
		InvoiceSequence:   invoiceSequence,
	})
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError logs err and answers with message and the request correlation id
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := middleware.LoggerFromContext(c.Request.Context(), logger.ComponentAPI)
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps store and domain errors onto HTTP status codes
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, services.ErrNoCurrencySelected):
		sendError(c, http.StatusBadRequest, "A currency must be selected", err)
	case errors.Is(err, money.ErrOutOfRange):
		sendError(c, http.StatusBadRequest, "Amount out of range", err)
	case errors.Is(err, services.ErrInvalidSequential), errors.Is(err, services.ErrUnsupportedDateFormat):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// parseInt64Query reads a required int64 query parameter
func parseInt64Query(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		sendError(c, http.StatusBadRequest, name+" is required", nil)
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return value, true
}
