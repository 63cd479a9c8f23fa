package handlers

import (
	"ccms-monitor/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	monitorSvc *services.MonitorService
	readingSvc *services.ReadingService
}

func New(monitorSvc *services.MonitorService, readingSvc *services.ReadingService) *Handler {
	return &Handler{
		monitorSvc: monitorSvc,
		readingSvc: readingSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Monitoring
	r.POST("/fetch", h.FetchValue)

	// Reading archive
	r.GET("/readings", h.ListReadings)
	r.GET("/readings/:id", h.GetReading)
}
