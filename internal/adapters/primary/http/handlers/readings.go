package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ccms-monitor/internal/adapters/primary/http/dto"
	"ccms-monitor/internal/core/ports/output"
)

func (h *Handler) ListReadings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ReadingFilter{
		SID:     c.Query("sid"),
		MTEName: c.Query("mte_name"),
		Limit:   limit,
		Offset:  offset,
	}

	readings, total, err := h.readingSvc.List(c.Request.Context(), filter)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := dto.ListReadingsResponse{
		Items: make([]dto.ReadingResponse, 0, len(readings)),
		Total: total,
	}
	for _, reading := range readings {
		resp.Items = append(resp.Items, dto.ToReadingResponse(reading))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetReading(c *gin.Context) {
	reading, err := h.readingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReadingResponse(reading))
}
