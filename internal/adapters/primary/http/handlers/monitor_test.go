package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
	"ccms-monitor/internal/core/services"
	"ccms-monitor/internal/testutil"
)

func okReturn() map[string]interface{} {
	return map[string]interface{}{
		"RETURN": map[string]interface{}{"TYPE": "S", "MESSAGE": ""},
	}
}

func setupRouter(conn *testutil.MockRFCConnection, archive ports.ReadingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cred := domain.Credential{
		AsHost: "sap.example.com", SysNr: "00", Client: "001",
		User: "monitor", Passwd: "secret", Trace: "0",
	}
	creds := new(testutil.MockCredentialStore)
	creds.On("Fetch", mock.Anything).Return(&cred, nil)

	connector := new(testutil.MockRFCConnector)
	connector.On("Open", mock.Anything, cred).Return(conn, nil)

	readingSvc := services.NewReadingService(archive)
	monitorSvc := services.NewMonitorService(services.MonitorConfig{
		SID: "ABA", Company: "DUMMY", Product: "DUMMY",
		Interface: "XAL", Version: "1.0", ExtUser: "DUMMY",
	}, creds, connector, readingSvc)

	h := New(monitorSvc, readingSvc)
	r := gin.New()
	api := r.Group("/api/v1/ccms")
	h.RegisterRoutes(api)
	return r
}

func TestFetchValue(t *testing.T) {
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

	r := setupRouter(conn, nil)

	body, _ := json.Marshal(map[string]string{
		"context_name": "vhcalabaci_ABA_00",
		"object_name":  "R3Abap",
		"mte_name":     "Shortdumps",
	})
	req, _ := http.NewRequest("POST", "/api/v1/ccms/fetch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "GREEN", resp["value"])
	assert.Equal(t, "102", resp["class"])
}

func TestFetchValue_MissingField(t *testing.T) {
	r := setupRouter(new(testutil.MockRFCConnection), nil)

	body, _ := json.Marshal(map[string]string{"context_name": "ctx"})
	req, _ := http.NewRequest("POST", "/api/v1/ccms/fetch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchValue_BAPIError(t *testing.T) {
	conn := new(testutil.MockRFCConnection)
	conn.On("Call", "BAPI_XMI_LOGON", mock.Anything).Return(okReturn(), nil)
	conn.On("Call", "BAPI_SYSTEM_MTE_GETTIDBYNAME", mock.Anything).Return(map[string]interface{}{
		"RETURN": map[string]interface{}{"TYPE": "E", "MESSAGE": "MTE unknown"},
	}, nil)
	conn.On("Call", "BAPI_XMI_LOGOFF", mock.Anything).Return(okReturn(), nil)
	conn.On("Close").Return(nil)

	r := setupRouter(conn, nil)

	body, _ := json.Marshal(map[string]string{
		"context_name": "vhcalabaci_ABA_00",
		"object_name":  "Dialog",
		"mte_name":     "ResponseTimeDialog",
	})
	req, _ := http.NewRequest("POST", "/api/v1/ccms/fetch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListReadings(t *testing.T) {
	archive := new(testutil.MockReadingRepo)
	readings := []*domain.Reading{
		{
			ID: uuid.New().String(), SID: "ABA",
			MTE: domain.MTE{
				ContextName: "vhcalabaci_ABA_00",
				ObjectName:  "Dialog",
				MTEName:     "ResponseTimeDialog",
			},
			Class: domain.MTEClassPerformance, Value: "523",
			CollectedAt: time.Now().UTC(),
		},
	}
	archive.On("List", mock.Anything, mock.AnythingOfType("ports.ReadingFilter")).Return(readings, 1, nil)

	r := setupRouter(new(testutil.MockRFCConnection), archive)

	req, _ := http.NewRequest("GET", "/api/v1/ccms/readings?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestGetReading_NotFound(t *testing.T) {
	archive := new(testutil.MockReadingRepo)
	archive.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrReadingNotFound)

	r := setupRouter(new(testutil.MockRFCConnection), archive)

	req, _ := http.NewRequest("GET", "/api/v1/ccms/readings/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReadings_ArchiveDisabled(t *testing.T) {
	r := setupRouter(new(testutil.MockRFCConnection), nil)

	req, _ := http.NewRequest("GET", "/api/v1/ccms/readings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
