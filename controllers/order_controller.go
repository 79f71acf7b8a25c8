package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// OrderController serves /orders
type OrderController struct {
	service *services.OrderService
}

// NewOrderController creates a controller backed by service
func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// List handles GET /api/v1/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	respondList(c, orders, len(orders))
}

// Get handles GET /api/v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	order, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	respondData(c, http.StatusOK, order, "")
}

// Create handles POST /api/v1/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var input schemas.OrderInput
	if !bindInput(c, &input) {
		return
	}
	order, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}
	respondData(c, http.StatusCreated, order, "Laundry order created successfully")
}

// Update handles PUT /api/v1/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	var input schemas.OrderInput
	if !bindInput(c, &input) {
		return
	}
	order, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}
	respondData(c, http.StatusOK, order, "Order updated successfully")
}

// Delete handles DELETE /api/v1/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}
	respondMessage(c, "Order deleted successfully")
}
