package api

import (
	"bytes"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
	"strconv"
	"time"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	replays  prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_http_requests_total",
			Help: "Number of handled API requests",
		}, []string{"method", "route", "code"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crowdfund_http_request_duration_seconds",
			Help:    "Latency of API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		replays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crowdfund_http_idempotent_replays_total",
			Help: "Number of responses served from the idempotency cache",
		}),
	}
	registerer.MustRegister(m.requests, m.duration, m.replays)
	return m
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func callerOf(r *http.Request) model.Address {
	return model.Address(r.Header.Get(CallerHeader))
}

func idempotencyKey(r *http.Request, key string) string {
	return string(callerOf(r)) + "|" + r.Method + "|" + r.URL.Path + "|" + key
}

// acquire waits until no other request holds key, the returned func releases it
func (h *Handler) acquire(key string) func() {
	for {
		h.mu.Lock()
		done, ok := h.inflight[key]
		if !ok {
			done = make(chan struct{})
			h.inflight[key] = done
			h.mu.Unlock()

			return func() {
				h.mu.Lock()
				delete(h.inflight, key)
				h.mu.Unlock()
				close(done)
			}
		}
		h.mu.Unlock()
		<-done
	}
}

// idempotent replays the stored response of a write that was already served with the same key
func (h *Handler) idempotent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(IdempotencyHeader)
		if key == "" || h.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := idempotencyKey(r, key)
		release := h.acquire(cacheKey)
		defer release()

		if status, body, ok := h.cache.GetResponse(cacheKey); ok {
			h.metrics.replays.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(ReplayedHeader, "true")
			w.WriteHeader(status)
			_, _ = w.Write(body)
			return
		}

		var buf bytes.Buffer
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if status >= http.StatusInternalServerError {
			return
		}
		h.cache.SetResponse(cacheKey, status, buf.Bytes(), h.opts.idempotencyTTL)
	})
}
