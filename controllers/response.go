package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/laundry-api/middleware"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
)

// respondData writes a success envelope around data
func respondData(c *gin.Context, status int, data interface{}, message string) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// respondList writes a success envelope with the number of rows returned
func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"count":   count,
	})
}

// respondMessage writes a success envelope that carries only a message
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// respondError maps err onto the error envelope. Internal failures are logged
// in full; the client only sees the service's generic message.
func respondError(c *gin.Context, err error, fallback string) {
	serviceErr := services.AsServiceError(err, fallback)
	status := serviceErr.StatusCode()

	if status >= http.StatusInternalServerError {
		middleware.Logger(c).Error().Err(serviceErr.Err).Str("error_kind", string(serviceErr.Kind)).Msg(serviceErr.Message)
	}

	body := gin.H{
		"success": false,
		"error":   serviceErr.Message,
	}
	if len(serviceErr.Details) > 0 {
		body["details"] = serviceErr.Details
	}
	c.JSON(status, body)
}

// bindInput decodes the JSON body into input, reporting malformed or invalid
// bodies as a validation failure.
func bindInput(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		respondError(c, services.ValidationFailed(schemas.FromBindError(err).Issues), "")
		return false
	}
	return true
}

// parseID reads the :id path parameter
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := services.ParseID(c.Param("id"), entity)
	if err != nil {
		var serviceErr *services.ServiceError
		if errors.As(err, &serviceErr) {
			respondError(c, serviceErr, "")
		}
		return 0, false
	}
	return id, true
}
