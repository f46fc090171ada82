package maps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSelectRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/v1/maps/address-select", NewHandler(svc).SelectAddress)
	return engine
}

func postSelect(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/maps/address-select", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSelectAddressEndpoint(t *testing.T) {
	var calls atomic.Int64
	svc := newTestService(t, newUpstream(t, &calls, placesOKPayload, http.StatusOK))
	engine := newSelectRouter(svc)

	resp := svc.Lookup(context.Background(), "", "123 Main")

	rec := postSelect(t, engine, `{"sessionId":"`+resp.SessionID+`","placeId":"p1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var selected SelectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &selected); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if selected.Address != "123 Main St, Atlanta, GA, USA" {
		t.Fatalf("expected full description, got %q", selected.Address)
	}
}

func TestSelectAddressEndpointUnknownSessionReturns404(t *testing.T) {
	var calls atomic.Int64
	svc := newTestService(t, newUpstream(t, &calls, placesOKPayload, http.StatusOK))
	engine := newSelectRouter(svc)

	rec := postSelect(t, engine, `{"sessionId":"unknown-session","placeId":"p1"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "prediction not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSelectAddressEndpointRejectsMissingFields(t *testing.T) {
	var calls atomic.Int64
	svc := newTestService(t, newUpstream(t, &calls, placesOKPayload, http.StatusOK))
	engine := newSelectRouter(svc)

	rec := postSelect(t, engine, `{"sessionId":"s"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
