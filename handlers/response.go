package handlers

import (
	"net/http"

	"sorveteria-backend/services"
	"sorveteria-backend/utils"

	"github.com/gin-gonic/gin"
)

// All endpoints answer with the same envelope:
// {"success": true, "data": ...} or
// {"success": false, "error": {"code", "message", "details?"}}.

type errorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []services.FieldError `json:"details,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, body errorBody) {
	c.JSON(status, gin.H{"success": false, "error": body})
}

// respondServiceError maps a categorized service failure to its HTTP status.
func respondServiceError(c *gin.Context, err *services.Error) {
	respondError(c, err.HTTPStatus(), errorBody{
		Code:    err.Code,
		Message: err.Message,
		Details: err.Details,
	})
}

// respondBindingError turns a gin binding failure into a VALIDATION_ERROR
// with per-field details.
func respondBindingError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, errorBody{
		Code:    services.CodeValidation,
		Message: "Dados inválidos",
		Details: utils.ValidationDetails(err),
	})
}
