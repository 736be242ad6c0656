package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standard error response envelope. Success bodies are
// endpoint-specific shapes and are written directly by the handlers.
type Body struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BadRequest sends 400 with error message.
func BadRequest(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Error: err})
}

// NotFound sends 404.
func NotFound(c *gin.Context, err string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Error: err})
}

// Internal sends 500.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Error: err})
}
