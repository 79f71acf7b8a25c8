package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// PerfumeController serves /perfumes
type PerfumeController struct {
	service *services.PerfumeService
}

// NewPerfumeController creates a controller backed by service
func NewPerfumeController(service *services.PerfumeService) *PerfumeController {
	return &PerfumeController{service: service}
}

// List handles GET /api/v1/perfumes
func (ctl *PerfumeController) List(c *gin.Context) {
	perfumes, err := ctl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch perfumes")
		return
	}
	respondList(c, perfumes, len(perfumes))
}

// Get handles GET /api/v1/perfumes/:id
func (ctl *PerfumeController) Get(c *gin.Context) {
	id, ok := parseID(c, "perfume")
	if !ok {
		return
	}
	perfume, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch perfume")
		return
	}
	respondData(c, http.StatusOK, perfume, "")
}

// Create handles POST /api/v1/perfumes
func (ctl *PerfumeController) Create(c *gin.Context) {
	var input schemas.PerfumeInput
	if !bindInput(c, &input) {
		return
	}
	perfume, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create perfume")
		return
	}
	respondData(c, http.StatusCreated, perfume, "Perfume created successfully")
}

// Update handles PUT /api/v1/perfumes/:id
func (ctl *PerfumeController) Update(c *gin.Context) {
	id, ok := parseID(c, "perfume")
	if !ok {
		return
	}
	var input schemas.PerfumeInput
	if !bindInput(c, &input) {
		return
	}
	perfume, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Failed to update perfume")
		return
	}
	respondData(c, http.StatusOK, perfume, "Perfume updated successfully")
}

// Delete handles DELETE /api/v1/perfumes/:id
func (ctl *PerfumeController) Delete(c *gin.Context) {
	id, ok := parseID(c, "perfume")
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete perfume")
		return
	}
	respondMessage(c, "Perfume deleted successfully")
}
