package lambdahandler

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/services"
	"ccms-monitor/internal/testutil"
)

var testEvent = Event{
	ContextName: "vhcalabaci_ABA_00",
	ObjectName:  "Dialog",
	MTEName:     "ResponseTimeDialog",
}

func okReturn() map[string]interface{} {
	return map[string]interface{}{
		"RETURN": map[string]interface{}{"TYPE": "S", "MESSAGE": ""},
	}
}

func setupHandler(conn *testutil.MockRFCConnection) *Handler {
	cred := domain.Credential{
		AsHost: "sap.example.com", SysNr: "00", Client: "001",
		User: "monitor", Passwd: "secret", Trace: "0",
	}
	creds := new(testutil.MockCredentialStore)
	creds.On("Fetch", mock.Anything).Return(&cred, nil)

	connector := new(testutil.MockRFCConnector)
	connector.On("Open", mock.Anything, cred).Return(conn, nil)

	svc := services.NewMonitorService(services.MonitorConfig{
		SID: "ABA", Company: "DUMMY", Product: "DUMMY",
		Interface: "XAL", Version: "1.0", ExtUser: "DUMMY",
	}, creds, connector, nil)

	return New(svc)
}

func TestHandle(t *testing.T) {
	conn := new(testutil.MockRFCConnection)
	conn.On("Call", "BAPI_XMI_LOGON", mock.Anything).Return(okReturn(), nil)

	tidRes := okReturn()
	tidRes["TID"] = map[string]interface{}{"MTCLASS": "102", "MTSYSID": "ABA"}
	conn.On("Call", "BAPI_SYSTEM_MTE_GETTIDBYNAME", mock.Anything).Return(tidRes, nil)

	statusRes := okReturn()
	statusRes["VALUE"] = "GREEN"
	conn.On("Call", "BAPI_SYSTEM_MTE_GETSMVALUE", mock.Anything).Return(statusRes, nil)
	conn.On("Call", "BAPI_XMI_LOGOFF", mock.Anything).Return(okReturn(), nil)
	conn.On("Close").Return(nil)

	h := setupHandler(conn)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "req-123",
	})

	resp, err := h.Handle(ctx, testEvent)
	assert.NoError(t, err)
	assert.Equal(t, "ABA", resp.SID)
	assert.Equal(t, "102", resp.Class)
	assert.Equal(t, "GREEN", resp.Value)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, testEvent.MTEName, resp.MTEName)
}

func TestHandle_InvalidEvent(t *testing.T) {
	h := setupHandler(new(testutil.MockRFCConnection))

	_, err := h.Handle(context.Background(), Event{ObjectName: "Dialog"})
	assert.ErrorIs(t, err, domain.ErrInvalidContextName)
}

func TestHandle_BAPIErrorPropagates(t *testing.T) {
	conn := new(testutil.MockRFCConnection)
	conn.On("Call", "BAPI_XMI_LOGON", mock.Anything).Return(okReturn(), nil)
	conn.On("Call", "BAPI_SYSTEM_MTE_GETTIDBYNAME", mock.Anything).Return(map[string]interface{}{
		"RETURN": map[string]interface{}{"TYPE": "E", "MESSAGE": "MTE unknown"},
	}, nil)
	conn.On("Call", "BAPI_XMI_LOGOFF", mock.Anything).Return(okReturn(), nil)
	conn.On("Close").Return(nil)

	h := setupHandler(conn)

	resp, err := h.Handle(context.Background(), testEvent)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrBAPICallFailed)
}
