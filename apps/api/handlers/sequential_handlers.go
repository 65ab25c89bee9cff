package handlers

import (
	"net/http"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/interfaces"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/gin-gonic/gin"
)

// SequentialHandler serves document numbering endpoints
type SequentialHandler struct {
	common            *CommonServices
	sequentialService interfaces.SequentialService
	invoiceSequence   interfaces.SequenceSource
	now               func() time.Time
}

// NewSequentialHandler creates a handler with interface dependencies
func NewSequentialHandler(common *CommonServices) *SequentialHandler {
	return &SequentialHandler{
		common:            common,
		sequentialService: common.SequentialService,
		invoiceSequence:   common.InvoiceSequence,
		now:               time.Now,
	}
}

// GetExpenseInvoiceSequential godoc
// @Summary Get the next expense invoice number
// @Description Returns the live invoice numbering scheme and the number the next invoice would get today
// @Tags sequentials
// @Produce json
// @Success 200 {object} responses.SequentialResponse
// @Failure 404 {object} ErrorResponse
// @Router /sequentials/expense-invoice [get]
func (h *SequentialHandler) GetExpenseInvoiceSequential(c *gin.Context) {
	if h.invoiceSequence != nil {
		h.sendNextSequential(c, h.invoiceSequence.Current())
		return
	}
	h.sendStoredSequential(c, constants.ExpenseInvoiceSequenceConfigKey)
}

// GetExpenseQuotationSequential godoc
// @Summary Get the next expense quotation number
// @Description Returns the stored quotation numbering scheme and the number the next quotation would get today
// @Tags sequentials
// @Produce json
// @Success 200 {object} responses.SequentialResponse
// @Failure 404 {object} ErrorResponse
// @Router /sequentials/expense-quotation [get]
func (h *SequentialHandler) GetExpenseQuotationSequential(c *gin.Context) {
	h.sendStoredSequential(c, constants.ExpenseQuotationSequenceConfigKey)
}

func (h *SequentialHandler) sendStoredSequential(c *gin.Context, key string) {
	seq, err := h.sequentialService.GetConfig(c.Request.Context(), key)
	if err != nil {
		handleServiceError(c, err, "Sequential configuration not found")
		return
	}
	h.sendNextSequential(c, seq)
}

func (h *SequentialHandler) sendNextSequential(c *gin.Context, seq business.Sequential) {
	formatted, err := h.sequentialService.Format(seq, h.now())
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, sequentialResponse(seq, formatted))
}

// FormatSequential godoc
// @Summary Format a sequential number
// @Tags sequentials
// @Accept json
// @Produce json
// @Param request body requests.FormatSequentialRequest true "Numbering scheme"
// @Success 200 {object} responses.SequentialResponse
// @Failure 400 {object} ErrorResponse
// @Router /sequentials/format [post]
func (h *SequentialHandler) FormatSequential(c *gin.Context) {
	var req requests.FormatSequentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	at := h.now()
	if req.Date != nil {
		at = *req.Date
	}
	seq := business.Sequential{
		Prefix:          req.Prefix,
		DynamicSequence: business.DateFormat(req.DynamicSequence),
		Next:            req.Next,
	}

	formatted, err := h.sequentialService.Format(seq, at)
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, sequentialResponse(seq, formatted))
}

// ParseSequential godoc
// @Summary Parse a sequential number
// @Description Recovers prefix, date format and counter from a formatted number
// @Tags sequentials
// @Accept json
// @Produce json
// @Param request body requests.ParseSequentialRequest true "Formatted number"
// @Success 200 {object} responses.SequentialResponse
// @Failure 400 {object} ErrorResponse
// @Router /sequentials/parse [post]
func (h *SequentialHandler) ParseSequential(c *gin.Context) {
	var req requests.ParseSequentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	seq, err := h.sequentialService.Parse(req.Value)
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, sequentialResponse(seq, req.Value))
}
