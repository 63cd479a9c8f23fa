package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ccms-monitor/internal/adapters/primary/http/dto"
)

// FetchValue reads the current value of an MTE over a fresh XMI session.
func (h *Handler) FetchValue(c *gin.Context) {
	var req dto.FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := h.monitorSvc.Fetch(c.Request.Context(), dto.ToMTE(&req))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReadingResponse(reading))
}
