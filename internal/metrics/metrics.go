// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metric-recording interface consumed by the delivery layer.
type Recorder interface {
	RecordHTTPStatus(statusCode int)
	RecordSignIn()
	RecordSubmission(status string)
	RecordViewRecorded()
}

// Collector implements Recorder backed by Prometheus counters.
type Collector struct {
	httpStatus    *prometheus.CounterVec
	signIns       prometheus.Counter
	submissions   *prometheus.CounterVec
	viewsRecorded prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchboard_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		signIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pitchboard_sign_ins_total",
			Help: "Completed OAuth sign-ins.",
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchboard_submissions_total",
			Help: "Pitch submissions by terminal status.",
		}, []string{"status"}),
		viewsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pitchboard_views_recorded_total",
			Help: "Detail-page views recorded.",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.signIns,
		c.submissions,
		c.viewsRecorded,
	)

	return c
}

// RecordHTTPStatus records one response with the given status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordSignIn records one completed sign-in.
func (c *Collector) RecordSignIn() {
	c.signIns.Inc()
}

// RecordSubmission records one pitch submission outcome.
func (c *Collector) RecordSubmission(status string) {
	c.submissions.WithLabelValues(status).Inc()
}

// RecordViewRecorded records one detail-page view.
func (c *Collector) RecordViewRecorded() {
	c.viewsRecorded.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
