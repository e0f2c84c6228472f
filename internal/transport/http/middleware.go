package httptransport

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	dErrors "github.com/ccarella/app.charmverse.io/pkg/domain-errors"
	"github.com/ccarella/app.charmverse.io/pkg/platform/httputil"
)

// AdminAuth guards the admin routes. A request passes with either the static
// admin key (compared against its bcrypt hash) or a service-issued HS256 JWT.
// With neither configured, every admin request is rejected.
type AdminAuth struct {
	keyHash    string
	signingKey []byte
}

func NewAdminAuth(keyHash, signingKey string) *AdminAuth {
	return &AdminAuth{keyHash: keyHash, signingKey: []byte(signingKey)}
}

// Middleware authenticates the bearer token on admin requests.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
			return
		}
		if !a.authenticate(token) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *AdminAuth) authenticate(token string) bool {
	if a.keyHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(a.keyHash), []byte(token)) == nil {
			return true
		}
	}
	if len(a.signingKey) > 0 {
		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.signingKey, nil
		})
		if err == nil && parsed.Valid {
			return true
		}
	}
	return false
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
