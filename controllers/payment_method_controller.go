package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// PaymentMethodController serves /payment-methods
type PaymentMethodController struct {
	service *services.PaymentMethodService
}

// NewPaymentMethodController creates a controller backed by service
func NewPaymentMethodController(service *services.PaymentMethodService) *PaymentMethodController {
	return &PaymentMethodController{service: service}
}

// List handles GET /api/v1/payment-methods
func (ctl *PaymentMethodController) List(c *gin.Context) {
	methods, err := ctl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch payment methods")
		return
	}
	respondList(c, methods, len(methods))
}

// Get handles GET /api/v1/payment-methods/:id
func (ctl *PaymentMethodController) Get(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}
	method, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch payment method")
		return
	}
	respondData(c, http.StatusOK, method, "")
}

// Create handles POST /api/v1/payment-methods
func (ctl *PaymentMethodController) Create(c *gin.Context) {
	var input schemas.PaymentMethodInput
	if !bindInput(c, &input) {
		return
	}
	method, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create payment method")
		return
	}
	respondData(c, http.StatusCreated, method, "Payment method created successfully")
}

// Update handles PUT /api/v1/payment-methods/:id
func (ctl *PaymentMethodController) Update(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}
	var input schemas.PaymentMethodInput
	if !bindInput(c, &input) {
		return
	}
	method, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Failed to update payment method")
		return
	}
	respondData(c, http.StatusOK, method, "Payment method updated successfully")
}

// Delete handles DELETE /api/v1/payment-methods/:id
func (ctl *PaymentMethodController) Delete(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete payment method")
		return
	}
	respondMessage(c, "Payment method deleted successfully")
}
