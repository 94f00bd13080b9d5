package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/observability/telemetry"
	"github.com/enerscope/enerscope/internal/ports"
	"github.com/enerscope/enerscope/internal/service/render"
)

// Service orchestrates report generation: one upstream exchange, one render,
// then publication of the result. It owns the single latest-report slot.
//
// Requests may overlap; a generation token taken before the upstream call
// guarantees that only the response of the newest request ever lands in the
// slot. A stale settle still returns its view to its own caller, it just
// never overwrites newer visible state.
type Service struct {
	gateway   ports.AnalyticsGateway
	renderer  *render.Renderer
	cache     ports.Cache
	publisher ports.ReportPublisher
	cacheTTL  time.Duration
	log       *zap.Logger

	gen atomic.Uint64

	mu        sync.Mutex
	latestGen uint64
	latest    *domain.ReportView
}

// NewService wires the orchestrator. cache and publisher may be nil to
// disable caching or fan-out.
func NewService(gateway ports.AnalyticsGateway, renderer *render.Renderer, cache ports.Cache, publisher ports.ReportPublisher, cacheTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		gateway:   gateway,
		renderer:  renderer,
		cache:     cache,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// Generate runs one full report cycle for req and returns the rendered view.
func (s *Service) Generate(ctx context.Context, req domain.ReportRequest) (*domain.ReportView, error) {
	gen := s.gen.Add(1)
	key := cacheKey(req)

	if view, ok := s.cachedView(ctx, key); ok {
		s.settle(gen, view, "", false)
		return view, nil
	}

	start := time.Now()
	rep, err := s.gateway.FetchReport(ctx, req)
	telemetry.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		telemetry.ReportsGeneratedTotal.WithLabelValues("none", "error").Inc()
		return nil, err
	}

	renderStart := time.Now()
	view := s.renderer.Render(rep)
	telemetry.RenderDuration.Observe(time.Since(renderStart).Seconds())
	telemetry.ReportsGeneratedTotal.WithLabelValues(string(rep.Period), "success").Inc()

	s.settle(gen, view, key, true)
	return view, nil
}

// Latest returns the most recently settled rendered report, if any.
func (s *Service) Latest() (*domain.ReportView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.latest != nil
}

// settle installs the view unless a newer request already settled, then
// publishes and optionally caches it.
func (s *Service) settle(gen uint64, view *domain.ReportView, key string, store bool) {
	s.mu.Lock()
	if gen < s.latestGen {
		s.mu.Unlock()
		telemetry.StaleResponsesTotal.Inc()
		s.log.Info("Discarding superseded report response",
			zap.Uint64("generation", gen),
		)
		return
	}
	s.latestGen = gen
	s.latest = view
	s.mu.Unlock()

	if s.publisher != nil {
		s.publisher.PublishReport(view)
	}

	if store && s.cache != nil {
		if raw, err := json.Marshal(view); err == nil {
			if err := s.cache.Set(context.Background(), key, string(raw), s.cacheTTL); err != nil {
				s.log.Warn("Failed to cache rendered report", zap.Error(err))
			}
		}
	}
}

func (s *Service) cachedView(ctx context.Context, key string) (*domain.ReportView, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		telemetry.ReportCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	var view domain.ReportView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		telemetry.ReportCacheTotal.WithLabelValues("miss").Inc()
		s.log.Warn("Dropping undecodable cached report", zap.Error(err))
		return nil, false
	}
	telemetry.ReportCacheTotal.WithLabelValues("hit").Inc()
	return &view, true
}

// cacheKey hashes the full request so any changed field produces a fresh
// report.
func cacheKey(req domain.ReportRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s|%s|%g",
		req.DataID, req.CompanyName, req.FacilityName, req.Address, req.Filename, req.TariffRate)))
	return "report:" + hex.EncodeToString(sum[:16])
}
