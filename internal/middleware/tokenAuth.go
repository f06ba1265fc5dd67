package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/madsholme/spotlink/internal/constants"
)

// CreateTokenAuthMiddleware gates requests behind the configured password,
// the way audio nodes protect their REST surface. Callers send it in the
// Authorization header, an optional "Bearer " prefix is tolerated.
func CreateTokenAuthMiddleware(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := strings.TrimPrefix(r.Header.Get(constants.AuthHeaderName), "Bearer ")

			if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
				hlog.FromRequest(r).Debug().Msg("Rejected request due to missing or wrong password.")
				http.Error(w, "Missing or wrong password.", http.StatusUnauthorized)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
