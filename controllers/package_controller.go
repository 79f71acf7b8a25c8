package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// PackageController serves /packages
type PackageController struct {
	service *services.PackageService
}

// NewPackageController creates a controller backed by service
func NewPackageController(service *services.PackageService) *PackageController {
	return &PackageController{service: service}
}

// List handles GET /api/v1/packages
func (ctl *PackageController) List(c *gin.Context) {
	packages, err := ctl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch packages")
		return
	}
	respondList(c, packages, len(packages))
}

// Get handles GET /api/v1/packages/:id
func (ctl *PackageController) Get(c *gin.Context) {
	id, ok := parseID(c, "package")
	if !ok {
		return
	}
	pkg, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch package")
		return
	}
	respondData(c, http.StatusOK, pkg, "")
}

// Create handles POST /api/v1/packages
func (ctl *PackageController) Create(c *gin.Context) {
	var input schemas.PackageInput
	if !bindInput(c, &input) {
		return
	}
	pkg, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to create package")
		return
	}
	respondData(c, http.StatusCreated, pkg, "Package created successfully")
}

// Update handles PUT /api/v1/packages/:id
func (ctl *PackageController) Update(c *gin.Context) {
	id, ok := parseID(c, "package")
	if !ok {
		return
	}
	var input schemas.PackageInput
	if !bindInput(c, &input) {
		return
	}
	pkg, err := ctl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Failed to update package")
		return
	}
	respondData(c, http.StatusOK, pkg, "Package updated successfully")
}

// Delete handles DELETE /api/v1/packages/:id
func (ctl *PackageController) Delete(c *gin.Context) {
	id, ok := parseID(c, "package")
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete package")
		return
	}
	respondMessage(c, "Package deleted successfully")
}
