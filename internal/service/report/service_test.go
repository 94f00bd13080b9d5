package report

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/mocks"
	"github.com/enerscope/enerscope/internal/service/render"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	f, err := render.NewFormatter("en-US", "NGN")
	if err != nil {
		t.Fatalf("failed to build formatter: %v", err)
	}
	return render.NewRenderer(f)
}

func testReport(period domain.Period, facility string) *domain.Report {
	return &domain.Report{
		Period:       period,
		FacilityInfo: domain.FacilityInfo{FacilityName: facility},
	}
}

func testRequest(dataID string) domain.ReportRequest {
	return domain.ReportRequest{
		DataID:       dataID,
		CompanyName:  "Acme Industries",
		FacilityName: "Lagos Plant",
		TariffRate:   68.5,
	}
}

func TestGenerate_Success(t *testing.T) {
	// Arrange
	gateway := &mocks.MockAnalyticsGateway{
		FetchReportFunc: func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
			return testReport(domain.PeriodDay, "Lagos Plant"), nil
		},
	}
	publisher := mocks.NewMockReportPublisher()
	service := NewService(gateway, newTestRenderer(t), nil, publisher, time.Minute, newTestLogger())

	// Act
	view, err := service.Generate(context.Background(), testRequest("data-1"))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Period != domain.PeriodDay {
		t.Errorf("period = %q", view.Period)
	}
	if view.Body == nil {
		t.Error("expected rendered body")
	}
	if publisher.Count() != 1 {
		t.Errorf("expected 1 published view, got %d", publisher.Count())
	}

	latest, ok := service.Latest()
	if !ok {
		t.Fatal("expected latest view after success")
	}
	if latest != view {
		t.Error("latest slot does not hold the settled view")
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	// Arrange
	upstreamErr := errors.New("backend down")
	gateway := &mocks.MockAnalyticsGateway{
		FetchReportFunc: func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
			return nil, upstreamErr
		},
	}
	service := NewService(gateway, newTestRenderer(t), nil, nil, time.Minute, newTestLogger())

	// Act
	_, err := service.Generate(context.Background(), testRequest("data-1"))

	// Assert
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if _, ok := service.Latest(); ok {
		t.Error("failed generation must not settle a view")
	}
}

func TestLatest_EmptyBeforeFirstSuccess(t *testing.T) {
	service := NewService(mocks.NewMockAnalyticsGateway(), newTestRenderer(t), nil, nil, time.Minute, newTestLogger())

	if view, ok := service.Latest(); ok || view != nil {
		t.Errorf("expected empty slot, got %+v", view)
	}
}

func TestGenerate_NewerRequestWins(t *testing.T) {
	// Arrange: the first request's upstream call is held open until the
	// second request has fully settled.
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	gateway := &mocks.MockAnalyticsGateway{}
	gateway.FetchReportFunc = func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
		if req.DataID == "slow" {
			close(firstStarted)
			<-releaseFirst
			return testReport(domain.PeriodDay, "slow facility"), nil
		}
		return testReport(domain.PeriodWeek, "fast facility"), nil
	}

	service := NewService(gateway, newTestRenderer(t), nil, nil, time.Minute, newTestLogger())

	var wg sync.WaitGroup
	var slowView *domain.ReportView
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowView, slowErr = service.Generate(context.Background(), testRequest("slow"))
	}()

	<-firstStarted

	// Act: a newer request completes while the older one is in flight.
	fastView, err := service.Generate(context.Background(), testRequest("fast"))
	if err != nil {
		t.Fatalf("fast request failed: %v", err)
	}

	close(releaseFirst)
	wg.Wait()

	// Assert: the older response still reaches its caller but never
	// overwrites the newer settled view.
	if slowErr != nil {
		t.Fatalf("slow request failed: %v", slowErr)
	}
	if slowView == nil || slowView.Facility.FacilityName != "slow facility" {
		t.Errorf("slow caller got %+v", slowView)
	}

	latest, ok := service.Latest()
	if !ok {
		t.Fatal("expected latest view")
	}
	if latest != fastView {
		t.Errorf("latest = %q, want the newer request's view", latest.Facility.FacilityName)
	}
}

func TestGenerate_CacheHitSkipsUpstream(t *testing.T) {
	// Arrange
	req := testRequest("data-1")
	cached := &domain.ReportView{
		Period:   domain.PeriodDay,
		Facility: domain.FacilityHeader{FacilityName: "cached facility"},
	}
	raw, _ := json.Marshal(cached)

	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return string(raw), nil
	}

	gateway := mocks.NewMockAnalyticsGateway()
	service := NewService(gateway, newTestRenderer(t), cache, nil, time.Minute, newTestLogger())

	// Act
	view, err := service.Generate(context.Background(), req)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Facility.FacilityName != "cached facility" {
		t.Errorf("expected cached view, got %+v", view.Facility)
	}
	if len(gateway.Calls) != 0 {
		t.Errorf("cache hit must not reach upstream, saw %d calls", len(gateway.Calls))
	}
}

func TestGenerate_StoresRenderedViewInCache(t *testing.T) {
	// Arrange
	var storedKey, storedValue string
	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", nil
	}
	cache.SetFunc = func(ctx context.Context, key string, value string, expiration time.Duration) error {
		storedKey, storedValue = key, value
		return nil
	}

	gateway := &mocks.MockAnalyticsGateway{
		FetchReportFunc: func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
			return testReport(domain.PeriodWeek, "Lagos Plant"), nil
		},
	}
	service := NewService(gateway, newTestRenderer(t), cache, nil, time.Minute, newTestLogger())

	// Act
	if _, err := service.Generate(context.Background(), testRequest("data-1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if storedKey == "" {
		t.Fatal("expected a cache write")
	}
	var stored domain.ReportView
	if err := json.Unmarshal([]byte(storedValue), &stored); err != nil {
		t.Fatalf("cached value is not a view: %v", err)
	}
	if stored.Period != domain.PeriodWeek {
		t.Errorf("cached period = %q", stored.Period)
	}
}

func TestGenerate_UndecodableCacheEntryFallsThrough(t *testing.T) {
	// Arrange
	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "{not json", nil
	}

	gateway := &mocks.MockAnalyticsGateway{
		FetchReportFunc: func(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
			return testReport(domain.PeriodDay, "fresh facility"), nil
		},
	}
	service := NewService(gateway, newTestRenderer(t), cache, nil, time.Minute, newTestLogger())

	// Act
	view, err := service.Generate(context.Background(), testRequest("data-1"))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Facility.FacilityName != "fresh facility" {
		t.Error("expected a fresh render after a corrupt cache entry")
	}
}

func TestCacheKey_SensitiveToEveryField(t *testing.T) {
	base := testRequest("data-1")

	variants := []domain.ReportRequest{
		testRequest("data-2"),
		{DataID: "data-1", CompanyName: "Other Co", FacilityName: "Lagos Plant", TariffRate: 68.5},
		{DataID: "data-1", CompanyName: "Acme Industries", FacilityName: "Lagos Plant", TariffRate: 70},
	}

	baseKey := cacheKey(base)
	for i, v := range variants {
		if cacheKey(v) == baseKey {
			t.Errorf("variant %d collides with base key", i)
		}
	}

	if cacheKey(base) != baseKey {
		t.Error("cache key is not stable for identical requests")
	}
}
