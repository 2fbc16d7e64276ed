package chi

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/logger"
)

// exemptPaths bypass authentication.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Credential is an accepted API key and the name of the job board or
// integration that holds it.
type Credential struct {
	Client string
	Key    string
}

// ParseCredentials reads api_keys entries of the form "client:key" or a bare
// key, which is named after its position. Empty entries are skipped, so an
// unset environment variable disables auth.
func ParseCredentials(entries []string) ([]Credential, error) {
	out := make([]Credential, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		c := Credential{Client: fmt.Sprintf("key-%d", i), Key: e}
		if client, key, named := strings.Cut(e, ":"); named {
			if client == "" || key == "" {
				return nil, fmt.Errorf("api key %d: want client:key", i)
			}
			c = Credential{Client: client, Key: key}
		}
		if _, dup := seen[c.Key]; dup {
			return nil, fmt.Errorf("api key %d (%s): duplicate key", i, c.Client)
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// BearerAuthMiddleware validates Bearer tokens against creds and tags the
// request logger with the client name. With no credentials, authentication
// is disabled.
func BearerAuthMiddleware(creds []Credential) func(http.Handler) http.Handler {
	clients := make(map[string]string, len(creds))
	for _, c := range creds {
		clients[c.Key] = c.Client
	}

	return func(next http.Handler) http.Handler {
		if len(clients) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing authorization header")
				return
			}
			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					ErrorCodeUnauthorized, "authorization header must use Bearer scheme")
				return
			}
			client, ok := clients[auth[len(bearerPrefix):]]
			if !ok {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "invalid api key")
				return
			}

			ctx := logger.With(r.Context(), zap.String("client", client))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
