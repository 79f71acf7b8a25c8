package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/middleware"
	"github.com/kendall-kelly/laundry-api/models"
	"gorm.io/gorm"
)

type tabler interface {
	TableName() string
}

// HealthController reports on the service and its database
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a health controller for db
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health handles GET /api/v1/health
func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laundry API is running",
	})
}

// DatabaseStatus handles GET /api/v1/database/status - pings the database and
// counts the live rows in every table
func (h *HealthController) DatabaseStatus(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("Failed to get database instance")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to get database instance",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		middleware.Logger(c).Error().Err(err).Msg("Database ping failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Database connection failed",
		})
		return
	}

	tables := make(map[string]int64)
	for _, model := range models.All() {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			middleware.Logger(c).Error().Err(err).Msg("Failed to count rows")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to query tables",
			})
			return
		}
		tables[model.(tabler).TableName()] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"data": gin.H{
			"driver": db.Dialector.Name(),
			"tables": tables,
		},
	})
}
