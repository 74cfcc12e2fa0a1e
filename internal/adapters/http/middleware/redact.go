package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/yjkwon/todo-service/internal/platform/logging"
)

// RedactHeaders converts request headers into slog attributes, replacing
// sensitive values with "[REDACTED]". Multi-value headers are joined with
// a comma. The sensitive set is logging.SensitiveHeaders.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}
