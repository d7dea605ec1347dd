package handlers

import (
	"net/http"

	"sorveteria-backend/dtos"
	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

type PromocaoHandler struct {
	Service *services.Service
}

// AddPromocao creates an active promotion, subject to the active cap and
// the priority-1 uniqueness rule.
func (h *PromocaoHandler) AddPromocao(c *gin.Context) {
	var req dtos.AddPromocaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	promo, err := h.Service.AddPromocao(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, promo)
}
