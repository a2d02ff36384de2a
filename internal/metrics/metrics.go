package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported on /metrics.
var Registry = prometheus.NewRegistry()

var (
	requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetable",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timetable",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetable",
		Name:      "schedule_mutations_total",
		Help:      "Timetable changes by operation.",
	}, []string{"op"})

	planned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetable",
		Name:      "planner_lessons_total",
		Help:      "Lessons handled by auto-scheduling and import, by outcome.",
	}, []string{"outcome"})

	collisions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "timetable",
		Name:      "collisions",
		Help:      "Collisions found by the last scan.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requests, latency, mutations, planned, collisions,
	)
}

// Middleware records every request under its route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		latency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Mutation counts one insert, update or remove of a lesson.
func Mutation(op string) { mutations.WithLabelValues(op).Inc() }

func Planned(outcome string, n int) { planned.WithLabelValues(outcome).Add(float64(n)) }

func SetCollisions(n int) { collisions.Set(float64(n)) }
