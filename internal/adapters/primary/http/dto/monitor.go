package dto

import (
	"time"

	"ccms-monitor/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// FetchRequest names the MTE to read.
type FetchRequest struct {
	ContextName string `json:"context_name" binding:"required"`
	ObjectName  string `json:"object_name" binding:"required"`
	MTEName     string `json:"mte_name" binding:"required"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ReadingResponse represents a reading in API responses
type ReadingResponse struct {
	ID          string    `json:"id"`
	SID         string    `json:"sid"`
	ContextName string    `json:"context_name"`
	ObjectName  string    `json:"object_name"`
	MTEName     string    `json:"mte_name"`
	Class       string    `json:"class"`
	Value       string    `json:"value"`
	CollectedAt time.Time `json:"collected_at"`
}

// ListReadingsResponse represents the list response
type ListReadingsResponse struct {
	Items []ReadingResponse `json:"items"`
	Total int               `json:"total"`
}

// ============================================================================
// Converters
// ============================================================================

// ToMTE converts FetchRequest to domain.MTE
func ToMTE(req *FetchRequest) domain.MTE {
	return domain.MTE{
		ContextName: req.ContextName,
		ObjectName:  req.ObjectName,
		MTEName:     req.MTEName,
	}
}

// ToReadingResponse converts domain.Reading to ReadingResponse
func ToReadingResponse(reading *domain.Reading) ReadingResponse {
	return ReadingResponse{
		ID:          reading.ID,
		SID:         reading.SID,
		ContextName: reading.MTE.ContextName,
		ObjectName:  reading.MTE.ObjectName,
		MTEName:     reading.MTE.MTEName,
		Class:       string(reading.Class),
		Value:       reading.Value,
		CollectedAt: reading.CollectedAt,
	}
}
