package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the single error shape the UI consumes: a stringified
// message, no structured codes.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, err)
}

// respondInternalError logs the error and forwards its message to the UI.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, err)
}
