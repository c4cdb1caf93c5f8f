package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/daygo-app/daygo/pkg/metrics"
)

type Metrics struct {
	apiResponseTime *prometheus.HistogramVec
	apiErrorCounter *prometheus.CounterVec
	aiRequestTime   *prometheus.HistogramVec
	aiErrorCounter  *prometheus.CounterVec
	webhookCounter  *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime: metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter: metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		aiRequestTime:   metrics.NewHistogramVec("ai_request_time", []string{"target"}),
		aiErrorCounter:  metrics.NewCounterVec("ai_error", []string{"type"}),
		webhookCounter:  metrics.NewCounterVec("billing_webhook", []string{"event", "result"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) AIRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.aiRequestTime.WithLabelValues(target))
}

func (m *Metrics) AIErrorInc(types string) {
	m.aiErrorCounter.WithLabelValues(types).Inc()
}

func (m *Metrics) WebhookInc(event, result string) {
	m.webhookCounter.WithLabelValues(event, result).Inc()
}
