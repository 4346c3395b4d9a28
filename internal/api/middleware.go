package api

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katiamach/xray-contours-api/internal/logger"
	"github.com/katiamach/xray-contours-api/internal/metrics"
)

// instrument logs every request and records its status and duration.
func instrument(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeOf(r)
			snoop := httpsnoop.CaptureMetrics(next, w, r)

			m.Requests.WithLabelValues(route, strconv.Itoa(snoop.Code)).Inc()
			m.RequestDuration.WithLabelValues(route).Observe(snoop.Duration.Seconds())

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"query":    r.URL.RawQuery,
				"status":   snoop.Code,
				"bytes":    snoop.Written,
				"duration": snoop.Duration.String(),
			}).Info("request served")
		})
	}
}

// routeOf returns the matched route template so metrics labels stay bounded.
func routeOf(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}

	return "unmatched"
}
