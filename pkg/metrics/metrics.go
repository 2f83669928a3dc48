// Package metrics exposes Prometheus collectors for form handling and HTTP
// traffic. Collectors register with the default registry; Handler serves it.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcucsya/portal/pkg/form"
)

// Submission statuses.
const (
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusDuplicate = "duplicate"
	StatusFailed    = "failed"
)

var (
	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcucsya_form_validations_total",
			Help: "Form validations by form type and outcome",
		},
		[]string{"form", "result"}, // valid or invalid
	)

	fieldErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcucsya_form_field_errors_total",
			Help: "Reported field errors by form, field and kind",
		},
		[]string{"form", "field", "kind"},
	)

	submissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcucsya_form_submission_duration_seconds",
			Help:    "Time from request decode to response for form submissions",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"form", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcucsya_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

// ObserveValidation records the outcome of a validation and one field error
// per failing field.
func ObserveValidation(formType string, res form.Result) {
	if res.IsValid {
		validationTotal.WithLabelValues(formType, "valid").Inc()
		return
	}
	validationTotal.WithLabelValues(formType, "invalid").Inc()
	for _, field := range res.Fields() {
		kind, _ := res.Kind(field)
		fieldErrorsTotal.WithLabelValues(formType, field, string(kind)).Inc()
	}
}

// ObserveSubmission records how long a submission took and how it ended.
func ObserveSubmission(formType, status string, d time.Duration) {
	submissionDuration.WithLabelValues(formType, status).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware times requests by their chi route pattern, so path parameters
// do not explode label cardinality. Unmatched routes are labelled "unmatched".
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE responses streaming through the wrapper.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
