package handlers

import (
	"net/http"
	"strconv"

	"sorveteria-backend/dtos"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

type FotoHandler struct {
	Service *services.Service
}

// AddFoto appends a photo to the gallery.
func (h *FotoHandler) AddFoto(c *gin.Context) {
	var req dtos.AddFotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	foto, err := h.Service.AddFoto(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, foto)
}

// RemoveFoto deletes a photo by its numeric ID.
func (h *FotoHandler) RemoveFoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Service.RemoveFoto(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"removida": true})
}

// parseID reads the :id path parameter, answering a VALIDATION_ERROR for
// anything that is not a positive integer.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, errorBody{
			Code:    services.CodeValidation,
			Message: "Dados inválidos",
			Details: []services.FieldError{{Field: "id", Message: "deve ser um inteiro positivo"}},
		})
		return 0, false
	}
	return id, true
}
