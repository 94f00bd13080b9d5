package mocks

import (
	"context"
	"sync"

	"github.com/enerscope/enerscope/internal/domain"
)

// MockAnalyticsGateway is a mock implementation of AnalyticsGateway interface
type MockAnalyticsGateway struct {
	FetchReportFunc func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
	Calls           []domain.ReportRequest
	mu              sync.Mutex
}

func NewMockAnalyticsGateway() *MockAnalyticsGateway {
	return &MockAnalyticsGateway{}
}

func (m *MockAnalyticsGateway) FetchReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()
	if m.FetchReportFunc != nil {
		return m.FetchReportFunc(ctx, req)
	}
	return &domain.Report{}, nil
}

// MockReportService is a mock implementation of ReportService interface
type MockReportService struct {
	GenerateFunc func(ctx context.Context, req domain.ReportRequest) (*domain.ReportView, error)
	LatestFunc   func() (*domain.ReportView, bool)
}

func NewMockReportService() *MockReportService {
	return &MockReportService{}
}

func (m *MockReportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.ReportView, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &domain.ReportView{}, nil
}

func (m *MockReportService) Latest() (*domain.ReportView, bool) {
	if m.LatestFunc != nil {
		return m.LatestFunc()
	}
	return nil, false
}

// MockReportPublisher records every published view
type MockReportPublisher struct {
	Published []*domain.ReportView
	mu        sync.Mutex
}

func NewMockReportPublisher() *MockReportPublisher {
	return &MockReportPublisher{}
}

func (m *MockReportPublisher) PublishReport(view *domain.ReportView) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, view)
}

func (m *MockReportPublisher) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Published)
}
