package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/infrastructure/circuitbreaker"
)

// ErrUpstreamUnavailable covers every transport-level failure: the caller
// only ever sees one generic message for those, per the error contract.
var ErrUpstreamUnavailable = errors.New("analytics backend unavailable")

// Client is the HTTP gateway to the remote analytics backend. One report
// request maps to exactly one POST exchange.
type Client struct {
	baseURL string
	http    *circuitbreaker.HTTPClient
	log     *zap.Logger
}

func NewClient(baseURL string, httpClient *circuitbreaker.HTTPClient, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// generateRequest is the upstream request body.
type generateRequest struct {
	CompanyName  string  `json:"company_name"`
	FacilityName string  `json:"facility_name"`
	Address      string  `json:"address"`
	Filename     string  `json:"filename"`
	TariffRate   float64 `json:"tariff_rate"`
}

// envelope is the upstream response wrapper: a status discriminator plus
// either the report payload or a human-readable message.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// FetchReport issues the single report-generation exchange and decodes the
// envelope into a typed Report.
func (c *Client) FetchReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	body, err := json.Marshal(generateRequest{
		CompanyName:  req.CompanyName,
		FacilityName: req.FacilityName,
		Address:      req.Address,
		Filename:     req.Filename,
		TariffRate:   req.TariffRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/data/%s/energy-analytics-reports", c.baseURL, req.DataID)
	resp, err := c.http.Post(ctx, url, "application/json", body)
	if err != nil {
		c.log.Error("Analytics backend request failed",
			zap.String("data_id", req.DataID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed response", ErrUpstreamUnavailable)
	}

	if resp.StatusCode != http.StatusOK || env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = "failed to generate report"
		}
		return nil, errors.New(msg)
	}

	var rep domain.Report
	if err := json.Unmarshal(env.Data, &rep); err != nil {
		return nil, fmt.Errorf("%w: malformed report payload", ErrUpstreamUnavailable)
	}

	return &rep, nil
}
