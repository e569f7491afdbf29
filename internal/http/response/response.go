package response

import (
	"net/http"

	"varniya_crm_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// FromError maps a domain error to an HTTP response. Typed apperr errors
// carry their own status; anything else is treated as internal.
func FromError(c *gin.Context, err error) {
	if e, ok := err.(*apperr.Error); ok {
		c.JSON(e.HTTPStatus(), ErrorResponse{Error: e.Message, Details: e.Details})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
