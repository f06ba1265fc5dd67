package middleware

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
)

// ChiRequestIDHandler makes zerolog aware of the request id Chi's RequestID
// middleware already attached, so we do not end up with two competing ids.
// fieldKey names the field in zerolog's output; if headerName is non-empty
// the id is echoed in the response as well.
//
// It mimics the RequestIDHandler contained in the zerolog library:
// https://github.com/rs/zerolog/blob/a8f5328bb7c784b044cc9649643d56d97ad2334c/hlog/hlog.go#L150
func ChiRequestIDHandler(fieldKey, headerName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := middleware.GetReqID(ctx)

			if fieldKey != "" {
				log := zerolog.Ctx(ctx)
				log.UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.Str(fieldKey, id)
				})
			}

			if headerName != "" {
				w.Header().Set(headerName, id)
			}
			next.ServeHTTP(w, r)
		})
	}
}
