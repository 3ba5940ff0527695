package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

const RequestIdHeader = "X-Request-Id"

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timelogger",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route, method and status.",
}, []string{"route", "method", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "timelogger",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {
	r.Use(requestLogging)
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestId := req.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		route := routeTemplate(req)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, req)
		elapsed := time.Since(start)

		httpRequests.WithLabelValues(route, req.Method, strconv.Itoa(recorder.status)).Inc()
		httpDuration.WithLabelValues(route, req.Method).Observe(elapsed.Seconds())

		log.WithFields(log.Fields{
			"requestId": requestId,
			"method":    req.Method,
			"path":      req.URL.Path,
			"status":    recorder.status,
			"duration":  elapsed,
		}).Debug("Handled request")
	})
}

// routeTemplate keeps metric cardinality bounded by labelling with the matched template, not the raw path.
func routeTemplate(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unmatched"
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}
