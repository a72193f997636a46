package httputil

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"
)

const stackTraceBuffSize = 1024

type PanicMiddleware struct {
	log *zap.SugaredLogger
}

func NewPanicMiddleware(log *zap.SugaredLogger) *PanicMiddleware {
	return &PanicMiddleware{log: log}
}

func (pm *PanicMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				pm.log.Warnln("panic recovered", rec)

				buf := make([]byte, stackTraceBuffSize)

				n := runtime.Stack(buf, false)
				for n == len(buf) {
					buf = make([]byte, len(buf)*2)
					n = runtime.Stack(buf, false)
				}
				pm.log.Warnf("stack trace: %s", buf[:n])

				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
