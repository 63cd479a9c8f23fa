package ports

import (
	"context"

	"ccms-monitor/internal/core/domain"
)

// CredentialStore resolves the SAP logon credential for the monitored system.
type CredentialStore interface {
	Fetch(ctx context.Context) (*domain.Credential, error)
}
