// Package metrics exposes request and domain counters in the Prometheus
// text format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "backoffice"

type Registry struct {
	reg *prometheus.Registry

	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	onboardingSteps *prometheus.CounterVec
	posTests        *prometheus.CounterVec
	staleSnapshots  prometheus.Gauge
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		onboardingSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_transitions_total",
			Help:      "Onboarding wizard transitions by kind and outcome.",
		}, []string{"transition", "outcome"}),
		posTests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pos_connection_tests_total",
			Help:      "POS connection tests by provider and result.",
		}, []string{"provider", "ok"}),
		staleSnapshots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "onboarding_stale_snapshots",
			Help:      "Onboarding snapshots found stale by the last sweep.",
		}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.latency,
		r.onboardingSteps,
		r.posTests,
		r.staleSnapshots,
	)

	return r
}

// Middleware records one sample per request. Unmatched routes are grouped
// under a single label to keep cardinality bounded.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method

		r.requests.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		r.latency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// The domain recorders below accept a nil receiver so services can run
// without a registry.

func (r *Registry) OnboardingTransition(transition string, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	r.onboardingSteps.WithLabelValues(transition, outcome).Inc()
}

func (r *Registry) POSTest(provider string, ok bool) {
	if r == nil {
		return
	}
	r.posTests.WithLabelValues(provider, strconv.FormatBool(ok)).Inc()
}

func (r *Registry) StaleSnapshots(n int) {
	if r == nil {
		return
	}
	r.staleSnapshots.Set(float64(n))
}
