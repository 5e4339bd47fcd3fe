package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "aureacursos.com.br/combo-web/internal/middleware"
)

// InjectLogger stores the logger on every request context.
func InjectLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLogger(r.Context(), logger)))
		})
	}
}

// RequestLogger writes one line per completed request. The request-scoped
// logger carrying the request id is visible to handlers through FromContext.
// htmx metadata is read from the context, so custommw.HTMX must run first.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := FromContext(ctx).With(
			zap.String("request_id", middleware.GetReqID(ctx)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		if ip := r.RemoteAddr; ip != "" {
			logger = logger.With(zap.String("remote_ip", ip))
		}
		r = r.WithContext(WithLogger(ctx, logger))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("route", routePattern(r)),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.Int("bytes", ww.BytesWritten()),
			}
			fields = append(fields, htmxFields(custommw.HTMXInfoFromContext(r.Context()))...)
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request completed", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func htmxFields(info custommw.HTMXInfo) []zap.Field {
	if !info.IsHTMX {
		return []zap.Field{zap.Bool("htmx", false)}
	}
	fields := []zap.Field{zap.Bool("htmx", true)}
	if info.IsBoosted {
		fields = append(fields, zap.Bool("htmx_boosted", true))
	}
	if info.HistoryRestore {
		fields = append(fields, zap.Bool("htmx_history_restore", true))
	}
	if info.TriggerID != "" {
		fields = append(fields, zap.String("htmx_trigger", info.TriggerID))
	}
	if info.Target != "" {
		fields = append(fields, zap.String("htmx_target", info.Target))
	}
	if info.CurrentURL != "" {
		fields = append(fields, zap.String("htmx_current_url", info.CurrentURL))
	}
	return fields
}
