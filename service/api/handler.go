package api

import (
	"github.com/QuangTung97/crowdfund/pkg/memtable"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/service/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
	"sync"
	"time"
)

// CallerHeader carries the address of the account executing a request
const CallerHeader = "X-Caller-Address"

// IdempotencyHeader ...
const IdempotencyHeader = "Idempotency-Key"

// ReplayedHeader is set on responses served from the idempotency cache
const ReplayedHeader = "Idempotent-Replayed"

type handlerOptions struct {
	logger         *zap.Logger
	tracerProvider trace.TracerProvider
	registerer     prometheus.Registerer
	gatherer       prometheus.Gatherer
	idempotencyTTL time.Duration
}

func defaultHandlerOptions() handlerOptions {
	reg := prometheus.NewRegistry()
	return handlerOptions{
		logger:         zap.NewNop(),
		tracerProvider: trace.NewNoopTracerProvider(),
		registerer:     reg,
		gatherer:       reg,
		idempotencyTTL: 10 * time.Minute,
	}
}

// Option ...
type Option func(opts *handlerOptions)

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *handlerOptions) {
		opts.logger = logger
	}
}

// WithTracerProvider ...
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(opts *handlerOptions) {
		opts.tracerProvider = provider
	}
}

// WithPrometheus registers the http metrics and serves /metrics from the gatherer
func WithPrometheus(registerer prometheus.Registerer, gatherer prometheus.Gatherer) Option {
	return func(opts *handlerOptions) {
		opts.registerer = registerer
		opts.gatherer = gatherer
	}
}

// WithIdempotencyTTL ...
func WithIdempotencyTTL(ttl time.Duration) Option {
	return func(opts *handlerOptions) {
		opts.idempotencyTTL = ttl
	}
}

// Handler serves the crowdfunding HTTP API
type Handler struct {
	svc   registry.IService
	reg   *registry.Registry
	cache *memtable.MemTable

	mu       sync.Mutex
	inflight map[string]chan struct{}

	metrics *metrics
	opts    handlerOptions
	router  chi.Router
}

// NewHandler creates a handler with all routes configured, writes go through svc and reads through reg
func NewHandler(
	svc registry.IService, reg *registry.Registry, cache *memtable.MemTable, options ...Option,
) *Handler {
	opts := defaultHandlerOptions()
	for _, fn := range options {
		fn(&opts)
	}

	h := &Handler{
		svc:      svc,
		reg:      reg,
		cache:    cache,
		inflight: map[string]chan struct{}{},
		metrics:  newMetrics(opts.registerer),
		opts:     opts,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(otellib.Middleware(opts.logger, opts.tracerProvider))

	r.Handle("/metrics", promhttp.HandlerFor(opts.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.metrics.middleware)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/creators/{creator}/campaigns", h.handleCreatorCampaigns)

		r.Get("/campaigns/{address}", h.handleGetCampaign)
		r.Get("/campaigns/{address}/contributors/{contributor}", h.handleGetContributor)
		r.Get("/campaigns/{address}/badges/{tokenID}", h.handleGetBadge)
		r.Get("/campaigns/{address}/owners/{owner}", h.handleGetOwner)
		r.Get("/campaigns/{address}/events", h.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(h.idempotent)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{address}/contributions", h.handleContribute)
			r.Post("/campaigns/{address}/withdrawals", h.handleWithdraw)
			r.Post("/campaigns/{address}/refunds", h.handleRefund)
			r.Post("/campaigns/{address}/cancel", h.handleCancel)
			r.Post("/campaigns/{address}/badges/{tokenID}/transfer", h.handleTransferBadge)
			r.Post("/campaigns/{address}/badges/{tokenID}/approve", h.handleApprove)
			r.Post("/campaigns/{address}/operators", h.handleSetOperator)
		})
	})

	h.router = r
	return h
}

// ServeHTTP ...
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}
