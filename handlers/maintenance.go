package handlers

import (
	"log"
	"net/http"

	"sorveteria-backend/services"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler exposes the two externally triggered maintenance
// operations. Both always succeed.
type MaintenanceHandler struct {
	Service *services.Service
}

// RemoveExpiredPromocoes sweeps promotions expired before today.
func (h *MaintenanceHandler) RemoveExpiredPromocoes(c *gin.Context) {
	removidas := h.Service.RemoveExpiredPromocoes()
	if removidas > 0 {
		log.Printf("expiry sweep removed %d promotion(s)", removidas)
	}
	respondData(c, http.StatusOK, gin.H{"removidas": removidas})
}

// UpdateStatus recomputes the operating status. The status is empty when
// no profile has been created yet.
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	status := h.Service.RecomputeStatus()
	respondData(c, http.StatusOK, gin.H{"status_funcionamento": status})
}
