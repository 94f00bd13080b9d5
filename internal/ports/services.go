package ports

import (
	"context"

	"github.com/enerscope/enerscope/internal/domain"
)

// AnalyticsGateway is the single outbound exchange with the remote analytics
// backend: one request, one Report or one error.
type AnalyticsGateway interface {
	FetchReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
}

// ReportService generates rendered reports and tracks the latest settled one.
type ReportService interface {
	Generate(ctx context.Context, req domain.ReportRequest) (*domain.ReportView, error)
	Latest() (*domain.ReportView, bool)
}

// ReportPublisher receives each newly settled rendered report, e.g. to fan
// it out to connected viewers.
type ReportPublisher interface {
	PublishReport(view *domain.ReportView)
}
