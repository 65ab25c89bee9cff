package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/middleware"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExpenseDocumentHandler serves calculation and validation of expense
// invoices and quotations
type ExpenseDocumentHandler struct {
	common            *CommonServices
	documentService   interfaces.ExpenseDocumentService
	validationService interfaces.ValidationService
	currencyService   interfaces.CurrencyService
	lifecycleService  *services.LifecycleService
}

// NewExpenseDocumentHandler creates a handler with interface dependencies
func NewExpenseDocumentHandler(common *CommonServices) *ExpenseDocumentHandler {
	return &ExpenseDocumentHandler{
		common:            common,
		documentService:   common.ExpenseDocumentService,
		validationService: common.ValidationService,
		currencyService:   common.CurrencyService,
		lifecycleService:  common.LifecycleService,
	}
}

// CalculateExpenseInvoice godoc
// @Summary Calculate an expense invoice
// @Description Recomputes line subtotals and totals, the tax summary and the document totals
// @Tags expense-invoices
// @Accept json
// @Produce json
// @Param request body requests.CalculateExpenseDocumentRequest true "Expense invoice"
// @Success 200 {object} responses.ExpenseDocumentCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expense-invoices/calculate [post]
func (h *ExpenseDocumentHandler) CalculateExpenseInvoice(c *gin.Context) {
	h.calculate(c, "expense_invoice")
}

// CalculateExpenseQuotation godoc
// @Summary Calculate an expense quotation
// @Description Recomputes line subtotals and totals, the tax summary and the document totals
// @Tags expense-quotations
// @Accept json
// @Produce json
// @Param request body requests.CalculateExpenseDocumentRequest true "Expense quotation"
// @Success 200 {object} responses.ExpenseDocumentCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expense-quotations/calculate [post]
func (h *ExpenseDocumentHandler) CalculateExpenseQuotation(c *gin.Context) {
	h.calculate(c, "expense_quotation")
}

func (h *ExpenseDocumentHandler) calculate(c *gin.Context, kind string) {
	var req requests.CalculateExpenseDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	doc := expenseDocumentFromRequest(req)
	calc, err := h.documentService.CalculateDocument(c.Request.Context(), doc)
	if err != nil {
		handleServiceError(c, err, "Referenced currency or tax withholding not found")
		return
	}

	middleware.LoggerFromContext(c.Request.Context(), logger.ComponentCalculation).Debug("Document calculated",
		zap.String("kind", kind),
		zap.Int("entries", len(calc.Entries)),
		zap.Float64("total", calc.Totals.Total))

	c.JSON(http.StatusOK, documentCalculationResponse(calc, h.currencyService))
}

// ValidateExpenseInvoice godoc
// @Summary Validate an expense invoice before submission
// @Description Returns the first failing rule as a toast message; an empty message means valid
// @Tags expense-invoices
// @Accept json
// @Produce json
// @Param request body requests.ValidateExpenseInvoiceRequest true "Expense invoice header"
// @Success 200 {object} responses.ValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /expense-invoices/validate [post]
func (h *ExpenseDocumentHandler) ValidateExpenseInvoice(c *gin.Context) {
	var req requests.ValidateExpenseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice := business.ExpenseInvoice{
		ExpenseDocument: business.ExpenseDocument{
			Sequential:     req.Sequential,
			Object:         req.Object,
			Date:           req.Date,
			DueDate:        req.DueDate,
			FirmID:         req.FirmID,
			InterlocutorID: req.InterlocutorID,
		},
	}

	result := h.validationService.ValidateExpenseInvoice(invoice, dateRangeFromRequest(req.DateRange))
	c.JSON(http.StatusOK, validationResponse(result))
}

// ValidateExpenseQuotation godoc
// @Summary Validate an expense quotation before submission
// @Description Returns the first failing rule as a toast message; an empty message means valid
// @Tags expense-quotations
// @Accept json
// @Produce json
// @Param request body requests.ValidateExpenseQuotationRequest true "Expense quotation header"
// @Success 200 {object} responses.ValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /expense-quotations/validate [post]
func (h *ExpenseDocumentHandler) ValidateExpenseQuotation(c *gin.Context) {
	var req requests.ValidateExpenseQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quotation := business.ExpenseQuotation{
		ExpenseDocument: business.ExpenseDocument{
			Sequential:     req.Sequential,
			Object:         req.Object,
			Date:           req.Date,
			DueDate:        req.DueDate,
			FirmID:         req.FirmID,
			InterlocutorID: req.InterlocutorID,
		},
	}

	result := h.validationService.ValidateExpenseQuotation(quotation)
	c.JSON(http.StatusOK, validationResponse(result))
}

// QuotationLifecycle godoc
// @Summary List quotation actions
// @Description Lists, in display order, the actions available for a quotation status. Omit status for an unsaved quotation.
// @Tags expense-quotations
// @Produce json
// @Param status query string false "Quotation status"
// @Success 200 {object} responses.QuotationLifecycleResponse
// @Router /expense-quotations/lifecycle [get]
func (h *ExpenseDocumentHandler) QuotationLifecycle(c *gin.Context) {
	status := business.ExpenseQuotationStatus(c.Query("status"))

	actions := h.lifecycleService.AvailableQuotationActions(status)
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, string(action))
	}

	c.JSON(http.StatusOK, responses.QuotationLifecycleResponse{
		Status:  string(status),
		Actions: names,
	})
}
