package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type TransactionHandler struct {
	transactionService *services.TransactionDataService
}

func NewTransactionHandler(transactionService *services.TransactionDataService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// GetTransactions godoc
// @Summary List bookkeeping transactions
// @Tags Books
// @Produce json
// @Param refresh query bool false "Bypass the cache" default(false)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	transactions, err := h.transactionService.GetTransactions(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": transactions})
}

// CreateTransaction godoc
// @Summary Record a transaction
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.transactionService.CreateTransaction(c.Request.Context(), tenant, &transaction); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": transaction})
}

// GetRecurringPayments godoc
// @Summary List recurring payments
// @Tags Books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /transactions/recurring [get]
func (h *TransactionHandler) GetRecurringPayments(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	payments, err := h.transactionService.GetRecurringPayments(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "recurring_payments": payments})
}

// CreateRecurringPayment godoc
// @Summary Create a recurring payment schedule
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /transactions/recurring [post]
func (h *TransactionHandler) CreateRecurringPayment(c *gin.Context) {
	var payment models.RecurringPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.transactionService.CreateRecurringPayment(c.Request.Context(), tenant, &payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "recurring_payment": payment})
}

// GetOverview godoc
// @Summary Combined transactions and recurring payments view
// @Tags Books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /transactions/overview [get]
func (h *TransactionHandler) GetOverview(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	overview, err := h.transactionService.GetBooksOverview(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "overview": overview})
}
