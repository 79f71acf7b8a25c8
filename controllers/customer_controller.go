package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// CustomerController serves /customers
type CustomerController struct {
	service *services.CustomerService
}

// NewCustomerController creates a controller backed by service
func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

// List handles GET /api/v1/customers
func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch customers")
		return
	}
	respondList(c, customers, len(customers))
}

// Get handles GET /api/v1/customers/:id
func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	customer, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch customer")
		return
	}
	respondData(c, http.StatusOK, customer, "")
}

// Create handles POST /api/v1/customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var input schemas.CustomerInput
	if !bindInput(c, &input) {
		return
	}
	customer, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	respondData(c, http.StatusCreated, customer, "Customer created successfully")
}

// Update handles PUT /api/v1/customers/:id
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	var input schemas.CustomerInput
	if !bindInput(c, &input) {
		return
	}
	customer, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	respondData(c, http.StatusOK, customer, "Customer updated successfully")
}

// Delete handles DELETE /api/v1/customers/:id
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	respondMessage(c, "Customer deleted successfully")
}
