package handlers

import (
	"net/http"

	"sorveteria-backend/dtos"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

type SorveteriaHandler struct {
	Service *services.Service
}

// GetSorveteria returns the profile with a freshly computed operating status.
func (h *SorveteriaHandler) GetSorveteria(c *gin.Context) {
	perfil, err := h.Service.GetSorveteria()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, perfil)
}

// CreateOrUpdateSorveteria handles the create-or-update call: the first one
// creates the profile with ID 1, later ones overwrite all supplied fields.
func (h *SorveteriaHandler) CreateOrUpdateSorveteria(c *gin.Context) {
	var req dtos.CreateSorveteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	perfil, err := h.Service.CreateOrUpdate(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, perfil)
}

// UpdateSorveteria merges only the provided fields over the existing profile.
func (h *SorveteriaHandler) UpdateSorveteria(c *gin.Context) {
	var req dtos.UpdateSorveteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	perfil, err := h.Service.UpdatePartial(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, perfil)
}
