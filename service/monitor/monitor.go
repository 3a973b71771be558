package monitor

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/service/registry"
	"github.com/go-co-op/gocron/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"sync"
	"time"
)

// JobName ...
const JobName = "campaign-status-sweep"

var allStatuses = []model.CampaignStatus{
	model.CampaignStatusActive,
	model.CampaignStatusSuccessful,
	model.CampaignStatusFailed,
	model.CampaignStatusCancelled,
}

// StatsSource ...
type StatsSource interface {
	Stats() registry.Stats
}

// Monitor periodically exports campaign statuses and the escrowed balance
type Monitor struct {
	source   StatsSource
	logger   *zap.Logger
	interval time.Duration

	campaigns *prometheus.GaugeVec
	balance   prometheus.Gauge

	mu       sync.Mutex
	observed map[model.Address]model.CampaignStatus

	scheduler gocron.Scheduler
}

// New ...
func New(
	source StatsSource, registerer prometheus.Registerer, logger *zap.Logger, interval time.Duration,
) *Monitor {
	m := &Monitor{
		source:   source,
		logger:   logger,
		interval: interval,

		campaigns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "crowdfund_campaigns",
			Help: "Number of campaigns per status",
		}, []string{"status"}),

		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "crowdfund_escrow_balance",
			Help: "Total value held in escrow by all campaigns",
		}),

		observed: map[model.Address]model.CampaignStatus{},
	}
	registerer.MustRegister(m.campaigns, m.balance)
	return m
}

// Sweep updates the gauges and returns the campaigns observed as failed for the first time
func (m *Monitor) Sweep(_ context.Context) []model.Address {
	stats := m.source.Stats()

	for _, status := range allStatuses {
		m.campaigns.WithLabelValues(status.String()).Set(float64(stats.Counts[status]))
	}
	balance, _ := stats.Escrowed.Float64()
	m.balance.Set(balance)

	m.mu.Lock()
	defer m.mu.Unlock()

	var failed []model.Address
	for _, s := range stats.Campaigns {
		prev := m.observed[s.Address]
		m.observed[s.Address] = s.Status

		if s.Status != model.CampaignStatusFailed || prev == model.CampaignStatusFailed {
			continue
		}

		failed = append(failed, s.Address)
		m.logger.Info("campaign failed",
			zap.String("campaign", string(s.Address)),
			zap.String("creator", string(s.Creator)),
			zap.String("raised", s.RaisedAmount.String()),
			zap.String("goal", s.Goal.String()),
		)
	}
	return failed
}

// Start schedules the sweep, runs are never overlapped
func (m *Monitor) Start() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(func() {
			m.Sweep(context.Background())
		}),
		gocron.WithName(JobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return err
	}

	s.Start()
	m.scheduler = s

	m.logger.Info("monitor started", zap.Duration("interval", m.interval))
	return nil
}

// Stop ...
func (m *Monitor) Stop() {
	if m.scheduler == nil {
		return
	}
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Error("monitor: shutdown scheduler", zap.Error(err))
	}
}
