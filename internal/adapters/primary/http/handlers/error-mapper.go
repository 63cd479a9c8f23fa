package handlers

import (
	"errors"
	"net/http"

	"ccms-monitor/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrReadingNotFound),
		errors.Is(err, domain.ErrTIDNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidContextName),
		errors.Is(err, domain.ErrInvalidObjectName),
		errors.Is(err, domain.ErrInvalidMTEName),
		errors.Is(err, domain.ErrUnsupportedClass):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream SAP / secret errors
	case errors.Is(err, domain.ErrBAPICallFailed),
		errors.Is(err, domain.ErrXMILogonFailed),
		errors.Is(err, domain.ErrValueFieldMissing),
		errors.Is(err, domain.ErrCredentialIncomplete),
		errors.Is(err, domain.ErrSecretMalformed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrArchiveDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
