package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexdb/internal/config"
)

// originList is the parsed cors.allowed_origins setting.
type originList struct {
	any     bool
	origins map[string]struct{}
}

func parseOrigins(s string) originList {
	l := originList{origins: make(map[string]struct{})}
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			l.any = true
		default:
			l.origins[o] = struct{}{}
		}
	}
	return l
}

func (l originList) allows(origin string) bool {
	if l.any {
		return true
	}
	_, ok := l.origins[origin]
	return ok
}

// CORS handles Cross-Origin Resource Sharing for the read-only API.
// A wildcard without credentials answers "*"; otherwise the request origin
// is echoed. Preflight requests (OPTIONS with Access-Control-Request-Method)
// are answered directly; other OPTIONS requests reach the router.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && allowed.allows(origin) {
				if allowed.any && !cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
