package middleware

import (
	"net/http"

	"github.com/Tk21111/color_server/internal/logx"
	"github.com/felixge/httpsnoop"
	"go.uber.org/zap"
)

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		//bind logger with this ctx and add zap ( data into ctx in obj ({}) format)
		ctx := logx.With(r.Context(),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("ip", r.RemoteAddr),
			zap.String("request_id", RequestIDFrom(r.Context())),
		)

		m := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))

		//get logger from ctx and add log
		logx.From(ctx).Info("http_request",
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration),
		)
	})
}
