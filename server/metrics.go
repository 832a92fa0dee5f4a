package server

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

type Metrics struct {
	handler            fasthttp.RequestHandler
	totalExports       prometheus.Counter
	totalFailedExports prometheus.Counter
	totalImports       prometheus.Counter
	totalFailedImports prometheus.Counter
	totalFailedLogins  prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics returns the process-wide metrics set. Counters register
// on the default prometheus registry so they are created exactly once.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = newMetrics()
	})

	return metrics
}

func newMetrics() *Metrics {
	m := &Metrics{
		totalExports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planx_exports_total",
			Help: "The total number of completed plan exports",
		}),
		totalFailedExports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planx_exports_failed_total",
			Help: "The total number of failed plan exports",
		}),
		totalImports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planx_imports_total",
			Help: "The total number of completed plan imports",
		}),
		totalFailedImports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planx_imports_failed_total",
			Help: "The total number of failed plan imports",
		}),
		totalFailedLogins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planx_logins_failed_total",
			Help: "The total number of failed logins",
		}),
	}

	m.handler = fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())

	return m
}

func (m *Metrics) Handler(c *fiber.Ctx) error {
	m.handler(c.Context())
	return nil
}
