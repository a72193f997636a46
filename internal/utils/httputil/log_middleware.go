package httputil

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ifelsik/dirlist/internal/middleware"
)

type LoggingMiddleware struct {
	log *zap.SugaredLogger
}

func NewLoggingMiddleware(log *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

func (lm *LoggingMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New()
		r = middleware.SetRequestID(r, requestID)

		log := lm.log.With(
			"method", r.Method,
			"URL", r.URL.Path,
			"request_id", requestID,
		)
		log.Debug("new incoming request")

		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		log = log.With(
			"elapsed", elapsed,
		)
		log.Info("request handled")
	})
}
