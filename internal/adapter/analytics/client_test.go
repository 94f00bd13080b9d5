package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/infrastructure/circuitbreaker"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	httpClient := circuitbreaker.NewHTTPClientWithSettings(
		circuitbreaker.DefaultHTTPClientSettings("analytics-test"), newTestLogger())
	return NewClient(baseURL, httpClient, newTestLogger())
}

func TestFetchReport_Success(t *testing.T) {
	// Arrange
	var gotPath string
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "ok",
			"data": map[string]interface{}{
				"period": "week",
				"facility_info": map[string]string{
					"facility_name": "Lagos Plant",
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	rep, err := client.FetchReport(context.Background(), domain.ReportRequest{
		DataID:      "abc-123",
		CompanyName: "Acme Industries",
		TariffRate:  68.5,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/api/v1/data/abc-123/energy-analytics-reports" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotBody.CompanyName != "Acme Industries" || gotBody.TariffRate != 68.5 {
		t.Errorf("request body = %+v", gotBody)
	}
	if rep.Period != domain.PeriodWeek {
		t.Errorf("period = %q", rep.Period)
	}
	if rep.FacilityInfo.FacilityName != "Lagos Plant" {
		t.Errorf("facility = %q", rep.FacilityInfo.FacilityName)
	}
}

func TestFetchReport_ErrorEnvelope(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "dataset not found",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	_, err := client.FetchReport(context.Background(), domain.ReportRequest{DataID: "missing"})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "dataset not found" {
		t.Errorf("error = %q, want backend message", err.Error())
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		t.Error("an explicit backend rejection is not a transport failure")
	}
}

func TestFetchReport_ErrorEnvelopeWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"error"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchReport(context.Background(), domain.ReportRequest{DataID: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "failed to generate report" {
		t.Errorf("error = %q, want fallback message", err.Error())
	}
}

func TestFetchReport_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchReport(context.Background(), domain.ReportRequest{DataID: "x"})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchReport_ConnectionRefused(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")

	_, err := client.FetchReport(context.Background(), domain.ReportRequest{DataID: "x"})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchReport_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	// Arrange: a permanently failing backend and a low failure threshold.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"status":"error","message":"boom"}`))
	}))
	defer server.Close()

	settings := circuitbreaker.DefaultHTTPClientSettings("analytics-test")
	settings.FailureThreshold = 2
	httpClient := circuitbreaker.NewHTTPClientWithSettings(settings, newTestLogger())
	client := NewClient(server.URL, httpClient, newTestLogger())

	// Act: drive the breaker past its threshold.
	for i := 0; i < 3; i++ {
		client.FetchReport(context.Background(), domain.ReportRequest{DataID: "x"})
	}

	// Assert: the breaker now rejects without contacting the backend. The
	// client reports it as any other transport failure.
	_, err := httpClient.Get(context.Background(), server.URL)
	if !errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen, got %v", err)
	}
	_, err = client.FetchReport(context.Background(), domain.ReportRequest{DataID: "x"})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
