// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mailr"

type collectors struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	domains        *prometheus.GaugeVec
	orders         *prometheus.GaugeVec
	availableSlots prometheus.Gauge
	unreadMessages prometheus.Gauge
	storeEvents    *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *collectors {
	return &collectors{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
		domains: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "domains",
			Help:      "Current number of domains per status.",
		}, []string{"status"}),
		orders: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Current number of orders per status.",
		}, []string{"status"}),
		availableSlots: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "available_domain_slots",
			Help:      "Free domain slots across live subscriptions.",
		}),
		unreadMessages: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unread_messages",
			Help:      "Unread messages in the unified inbox.",
		}),
		storeEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_events_total",
			Help:      "Store mutations by entity and action.",
		}, []string{"entity", "action"}),
	}
})

func getMetrics() *collectors {
	return metricsSingleton()
}

// Instrument records request counts and latency per matched route.
func Instrument() gin.HandlerFunc {
	m := getMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
