package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/subscription"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server
// Error response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondServiceError maps domain errors onto the right status code:
// entitlement failures become 402 with a stable code so the UI can offer
// an upgrade, everything else is a 500.
func respondServiceError(c *gin.Context, err error, context string) {
	if errors.Is(err, subscription.ErrSubscriptionRequired) {
		c.JSON(http.StatusPaymentRequired, ErrorResponse{
			Error: err.Error(),
			Code:  "subscription_required",
		})
		return
	}
	respondInternalError(c, err, context)
}

// parseIntParam reads an integer path parameter, responding with a 400
// when it does not parse.
func parseIntParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, name+" must be an integer")
		return 0, false
	}
	return value, true
}

// respondSuccess sends a 200 response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}
