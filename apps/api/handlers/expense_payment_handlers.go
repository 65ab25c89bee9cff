package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// ExpensePaymentHandler serves payment allocation endpoints
type ExpensePaymentHandler struct {
	common         *CommonServices
	paymentService interfaces.ExpensePaymentService
}

// NewExpensePaymentHandler creates a handler with interface dependencies
func NewExpensePaymentHandler(common *CommonServices) *ExpensePaymentHandler {
	return &ExpensePaymentHandler{
		common:         common,
		paymentService: common.ExpensePaymentService,
	}
}

// ReconcileExpensePayment godoc
// @Summary Reconcile an expense payment
// @Description Computes available, used and remaining amounts of a payment, the balance of each allocated invoice and the validation message
// @Tags expense-payments
// @Accept json
// @Produce json
// @Param request body requests.ReconcileExpensePaymentRequest true "Expense payment"
// @Success 200 {object} responses.ExpensePaymentReconciliationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expense-payments/reconcile [post]
func (h *ExpensePaymentHandler) ReconcileExpensePayment(c *gin.Context) {
	var req requests.ReconcileExpensePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	payment := expensePaymentFromRequest(req)
	reconciliation, err := h.paymentService.Reconcile(c.Request.Context(), payment, allocationMode(req.Mode))
	if err != nil {
		handleServiceError(c, err, "Referenced currency or expense invoice not found")
		return
	}

	c.JSON(http.StatusOK, reconciliationResponse(reconciliation))
}

// ListCandidateInvoices godoc
// @Summary List invoices a payment can be allocated to
// @Description Lists the unpaid, sent and partially paid expense invoices of a firm
// @Tags expense-payments
// @Produce json
// @Param firmId query int true "Firm ID"
// @Success 200 {array} responses.CandidateInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Router /expense-payments/candidate-invoices [get]
func (h *ExpensePaymentHandler) ListCandidateInvoices(c *gin.Context) {
	firmID, ok := parseInt64Query(c, "firmId")
	if !ok {
		return
	}

	invoices, err := h.paymentService.CandidateInvoices(c.Request.Context(), firmID)
	if err != nil {
		handleServiceError(c, err, "Firm not found")
		return
	}

	out := make([]responses.CandidateInvoiceResponse, 0, len(invoices))
	for i := range invoices {
		invoice := &invoices[i]
		candidate := responses.CandidateInvoiceResponse{
			ID:               invoice.ID,
			Sequential:       invoice.Sequential,
			Status:           string(invoice.Status),
			CurrencyID:       invoice.CurrencyID,
			Total:            invoice.Total,
			AmountPaid:       invoice.AmountPaid,
			RemainingBalance: h.paymentService.InvoiceBalance(invoice).Float(),
		}
		if invoice.Currency != nil {
			candidate.CurrencyCode = invoice.Currency.Code
		}
		out = append(out, candidate)
	}

	c.JSON(http.StatusOK, out)
}
