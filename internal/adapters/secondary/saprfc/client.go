package saprfc

import (
	"context"
	"fmt"

	"github.com/sap/gorfc/gorfc"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

type connector struct {
	lang string
}

// NewConnector creates an RFC connector over the NetWeaver RFC SDK. The
// native library is resolved at runtime through SAPNWRFC_HOME and
// LD_LIBRARY_PATH; trace files go to RFC_TRACE_DIR.
func NewConnector() ports.RFCConnector {
	return &connector{lang: "EN"}
}

// connParams maps the credential to the lowercase parameter keys the RFC
// SDK expects.
func (c *connector) connParams(cred domain.Credential) gorfc.ConnectionParameters {
	return gorfc.ConnectionParameters{
		"ashost": cred.AsHost,
		"sysnr":  cred.SysNr,
		"client": cred.Client,
		"user":   cred.User,
		"passwd": cred.Passwd,
		"lang":   c.lang,
		"trace":  cred.Trace,
	}
}

func (c *connector) Open(ctx context.Context, cred domain.Credential) (ports.RFCConnection, error) {
	conn, err := gorfc.ConnectionFromParams(c.connParams(cred))
	if err != nil {
		return nil, fmt.Errorf("connect to sap application server: %w", err)
	}
	return &connection{conn: conn}, nil
}

type connection struct {
	conn *gorfc.Connection
}

func (c *connection) Call(funcName string, params map[string]interface{}) (map[string]interface{}, error) {
	return c.conn.Call(funcName, params)
}

func (c *connection) Close() error {
	return c.conn.Close()
}
