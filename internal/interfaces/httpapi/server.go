package httpapi

import (
	"net/http"

	"github.com/riskibarqy/lineup-advisor/internal/platform/id"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

type RouterOptions struct {
	ServiceName        string
	CORSAllowedOrigins []string
	RequestIDs         id.Generator
	// CaptureBodyBytes > 0 records that many request body bytes on the span.
	CaptureBodyBytes int
}

// NewRouter wraps the routes in middleware, outermost first: tracing, body
// capture, request ids, logging, CORS, panic recovery.
func NewRouter(handler *Handler, opts RouterOptions, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.RequestIDs == nil {
		opts.RequestIDs = id.NewUUIDGenerator("req", 16)
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerRecommendationRoutes(mux, handler)

	return RequestTracing(opts.ServiceName,
		CaptureRequestBody(opts.CaptureBodyBytes,
			RequestID(opts.RequestIDs,
				RequestLogging(logger,
					CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", requestIDFromContext(r.Context()),
				)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
