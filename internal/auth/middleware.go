package auth

import (
	"net/http"
	"strings"

	"claimscore/internal/config"
)

// Bearer authenticates every request under it. The master bypass runs before
// any JWT parsing: the master value is a pre-shared opaque string, not a
// signed token, and must never reach the parser. Non-matching values fall
// through to standard verification.
func Bearer(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			// scheme match is case-insensitive per RFC 7235
			if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimSpace(h[7:])
			if cfg.MasterToken != "" && raw == cfg.MasterToken {
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), MasterClaims())))
				return
			}
			claims, err := Verify(cfg, raw)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAnyRole rejects authenticated principals lacking every listed role.
// 403, distinct from the 401 the Bearer middleware produces.
func RequireAnyRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !FromContext(r.Context()).HasAnyRole(roles...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireUserRole() func(http.Handler) http.Handler {
	return RequireAnyRole(UserTierRoles...)
}

func RequireAdministratorRole() func(http.Handler) http.Handler {
	return RequireAnyRole(AdministratorTierRoles...)
}
