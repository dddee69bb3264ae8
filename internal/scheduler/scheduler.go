package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/metrics"
)

// Pinger is the upstream surface the probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeResult is the outcome of the most recent reachability check.
type ProbeResult struct {
	CheckedAt time.Time `json:"checked_at"`
	Healthy   bool      `json:"healthy"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
}

// UpstreamProbe periodically pings the weather API so the health endpoint
// and the upstream_up gauge reflect reachability between requests.
type UpstreamProbe struct {
	cron     *cron.Cron
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu   sync.RWMutex
	last ProbeResult
}

func NewUpstreamProbe(pinger Pinger, interval time.Duration, logger *zap.Logger) *UpstreamProbe {
	return &UpstreamProbe{
		cron:     cron.New(),
		pinger:   pinger,
		interval: interval,
		timeout:  10 * time.Second,
		logger:   logger,
	}
}

// Start schedules the recurring check and runs one immediately in the
// background.
func (p *UpstreamProbe) Start() error {
	schedule := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(schedule, p.check); err != nil {
		return fmt.Errorf("scheduling upstream probe: %w", err)
	}
	p.cron.Start()
	go p.check()

	p.logger.Info("upstream probe started", zap.Duration("interval", p.interval))
	return nil
}

// Stop halts the schedule and waits for an in-flight check to finish.
func (p *UpstreamProbe) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info("upstream probe stopped")
}

func (p *UpstreamProbe) check() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	err := p.pinger.Ping(ctx)
	latency := time.Since(start)

	result := ProbeResult{
		CheckedAt: start,
		Healthy:   err == nil,
		LatencyMS: latency.Milliseconds(),
	}

	if err != nil {
		result.Error = err.Error()
		metrics.UpstreamUp.Set(0)
		p.logger.Warn("upstream probe failed",
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		metrics.UpstreamUp.Set(1)
		p.logger.Debug("upstream probe ok", zap.Duration("latency", latency))
	}

	p.mu.Lock()
	p.last = result
	p.mu.Unlock()
}

// Last returns the most recent probe outcome. ok is false until the first
// check has completed.
func (p *UpstreamProbe) Last() (ProbeResult, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last.CheckedAt.IsZero() {
		return ProbeResult{}, false
	}
	return p.last, true
}
