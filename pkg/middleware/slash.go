package middleware

import (
	"net/http"
	"path"
	"strings"
)

// TrimSlash permanently redirects "/superbowl/bowl/" to "/superbowl/bowl"
// so every table route has exactly one URL. The root path is left alone.
func TrimSlash() func(http.Handler) http.Handler {
	return canonical(func(p string) string {
		if len(p) > 1 {
			return strings.TrimRight(p, "/")
		}
		return p
	})
}

// AddSlash is the inverse for mounted modules such as /docs, whose index
// lives at the trailing slash. Paths naming a file are left alone.
func AddSlash() func(http.Handler) http.Handler {
	return canonical(func(p string) string {
		if strings.HasSuffix(p, "/") || path.Ext(p) != "" {
			return p
		}
		return p + "/"
	})
}

// canonical redirects whenever rewrite changes the request path. The query
// string is carried over.
func canonical(rewrite func(string) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target := rewrite(r.URL.Path)
			if target == r.URL.Path {
				next.ServeHTTP(w, r)
				return
			}

			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
