package middleware

import (
	"net/http"
	"strings"

	"postanalyzer/internal/platform/logger"
	pnet "postanalyzer/internal/platform/net"

	"github.com/google/uuid"
)

// maxRequestIDLen bounds caller supplied ids so they cannot bloat logs
const maxRequestIDLen = 128

// newRequestID is a seam for tests
var newRequestID = uuid.NewString

// RequestID accepts X-Request-ID from the caller or mints a uuid, stores it on
// the context for chi, pnet and the logger, and mirrors it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(pnet.RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = newRequestID()
			}
			ctx := pnet.WithRequest(r.Context(), id)
			ctx = logger.WithRequest(ctx, id)
			w.Header().Set(pnet.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
