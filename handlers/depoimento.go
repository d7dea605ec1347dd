package handlers

import (
	"net/http"

	"sorveteria-backend/dtos"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

type DepoimentoHandler struct {
	Service *services.Service
}

// AddDepoimento accepts a visitor review; it always enters moderation as
// pendente.
func (h *DepoimentoHandler) AddDepoimento(c *gin.Context) {
	var req dtos.AddDepoimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	dep, err := h.Service.AddDepoimento(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dep)
}

// UpdateDepoimentoStatus applies a moderation decision to a review.
func (h *DepoimentoHandler) UpdateDepoimentoStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.UpdateDepoimentoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	dep, err := h.Service.UpdateDepoimentoStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dep)
}
