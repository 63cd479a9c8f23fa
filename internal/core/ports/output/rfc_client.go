package ports

import (
	"context"

	"ccms-monitor/internal/core/domain"
)

// RFCConnection is one open RFC session to an SAP application server.
type RFCConnection interface {
	Call(funcName string, params map[string]interface{}) (map[string]interface{}, error)
	Close() error
}

// RFCConnector opens RFC connections from logon data.
type RFCConnector interface {
	Open(ctx context.Context, cred domain.Credential) (RFCConnection, error)
}
