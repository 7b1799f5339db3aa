package httpapi

import (
	"net/http"

	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/riskibarqy/team-registry/internal/platform/metrics"
)

// RouterOptions carries the optional parts of the router.
type RouterOptions struct {
	CORSAllowedOrigins []string
	// Metrics records per-route latency when set.
	Metrics *metrics.Metrics
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	routes := routeRegistrar{mux: mux, metrics: opts.Metrics}
	registerSystemRoutes(routes, handler, opts.MetricsHandler)
	registerTeamRoutes(routes, handler)
	registerPlayerRoutes(routes, handler)
	registerImportRoutes(routes, handler)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(ctx),
				)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
