package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

type annotationsKey struct{}

// Annotate acrescenta um campo ao log de conclusão da requisição. Os handlers usam-no para
// registar o ficheiro importado ou o id da sincronização iniciada.
func Annotate(ctx context.Context, key string, value any) {
	if fields, ok := ctx.Value(annotationsKey{}).(log.Fields); ok {
		fields[key] = value
	}
}

func annotations(ctx context.Context) log.Fields {
	fields, _ := ctx.Value(annotationsKey{}).(log.Fields)
	return fields
}

// LoggingMiddleware regista o início e o fim de cada requisição, com o status, a duração,
// o tamanho da resposta e os campos anotados pelos handlers.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx = context.WithValue(ctx, annotationsKey{}, log.Fields{})
			r = r.WithContext(ctx)

			requestFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}
			if !log.IsDevelopment() {
				requestFields["remote_addr"] = r.RemoteAddr
				requestFields["query"] = r.URL.RawQuery
				requestFields["user_agent"] = r.UserAgent()
				requestFields["content_type"] = r.Header.Get("Content-Type")
				requestFields["content_length"] = r.ContentLength
			}
			log.L.WithFields(requestFields).Info("→ Requisição iniciada")

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
				"response_bytes": lrw.bytes,
			}
			for key, value := range annotations(ctx) {
				fields[key] = value
			}

			logger := log.L.WithFields(fields)
			msg := fmt.Sprintf("Requisição concluída em %s", formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error("✗ " + msg)
			case lrw.statusCode >= 400:
				logger.Warn("✗ " + msg)
			default:
				logger.Info("✓ " + msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status e os bytes escritos na resposta.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}

// LogPanicMiddleware recupera pânicos dos handlers e responde com SRV_001.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"error":          err,
					"method":         r.Method,
					"path":           r.URL.Path,
				})
				logger.Error("❌ Pânico durante a requisição")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Stack trace do pânico")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
