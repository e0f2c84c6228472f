package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	mentionmodels "github.com/ccarella/app.charmverse.io/internal/mentions/models"
	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
	"github.com/ccarella/app.charmverse.io/internal/notifications/service"
	usermodels "github.com/ccarella/app.charmverse.io/internal/users/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

type stubService struct {
	stats     service.RunStats
	ran       bool
	runErr    error
	digest    notifmodels.Digest
	digestErr error
}

func (s *stubService) TryRun(ctx context.Context) (service.RunStats, bool, error) {
	return s.stats, s.ran, s.runErr
}

func (s *stubService) DigestForUser(ctx context.Context, userID domain.UserID) (notifmodels.Digest, error) {
	return s.digest, s.digestErr
}

const adminKey = "super-secret"

func newTestRouter(t *testing.T, svc NotificationService, checks map[string]HealthCheck) http.Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)
	auth := NewAdminAuth(string(hash), "jwt-signing-key")
	return NewRouter(New(svc, checks, slog.Default()), auth)
}

func doRequest(t *testing.T, router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleHealthz(t *testing.T) {
	t.Run("reports ok", func(t *testing.T) {
		router := newTestRouter(t, &stubService{}, map[string]HealthCheck{
			"postgres": func(ctx context.Context) error { return nil },
		})

		w := doRequest(t, router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok"`)
	})

	t.Run("reports degraded dependencies", func(t *testing.T) {
		router := newTestRouter(t, &stubService{}, map[string]HealthCheck{
			"redis": func(ctx context.Context) error { return context.DeadlineExceeded },
		})

		w := doRequest(t, router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "degraded")
	})
}

func TestAdminAuth(t *testing.T) {
	router := newTestRouter(t, &stubService{ran: true}, nil)

	t.Run("rejects missing token", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts the admin key", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", adminKey)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts a signed service token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "scheduler",
			"exp": time.Now().Add(time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte("jwt-signing-key"))
		require.NoError(t, err)

		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", signed)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"})
		signed, err := token.SignedString([]byte("other-key"))
		require.NoError(t, err)

		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleRun(t *testing.T) {
	t.Run("returns run stats", func(t *testing.T) {
		router := newTestRouter(t, &stubService{
			ran: true,
			stats: service.RunStats{
				UsersConsidered: 10,
				DigestsSent:     3,
				UsersNoTasks:    7,
				Duration:        2 * time.Second,
			},
		}, nil)

		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", adminKey)
		require.Equal(t, http.StatusOK, w.Code)

		var body runResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 10, body.UsersConsidered)
		assert.Equal(t, 3, body.DigestsSent)
		assert.Equal(t, int64(2000), body.DurationMS)
	})

	t.Run("conflicts while a run is in flight", func(t *testing.T) {
		router := newTestRouter(t, &stubService{ran: false}, nil)

		w := doRequest(t, router, http.MethodPost, "/admin/notifications/run", adminKey)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleDigestPreview(t *testing.T) {
	userID := uuid.NewString()

	t.Run("returns the digest", func(t *testing.T) {
		router := newTestRouter(t, &stubService{
			digest: notifmodels.Digest{
				User:         usermodels.User{Email: "alice@example.com"},
				MentionTasks: []mentionmodels.Task{{MentionID: "m1", PageTitle: "Roadmap"}},
			},
		}, nil)

		w := doRequest(t, router, http.MethodGet, "/admin/notifications/digests/"+userID, adminKey)
		require.Equal(t, http.StatusOK, w.Code)

		var body digestResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 1, body.TotalTasks)
		assert.Equal(t, "alice@example.com", body.Email)
		require.Len(t, body.MentionTasks, 1)
		assert.Equal(t, "Roadmap", body.MentionTasks[0].PageTitle)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		router := newTestRouter(t, &stubService{}, nil)

		w := doRequest(t, router, http.MethodGet, "/admin/notifications/digests/not-a-uuid", adminKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps unknown users to 404", func(t *testing.T) {
		router := newTestRouter(t, &stubService{digestErr: sentinel.ErrNotFound}, nil)

		w := doRequest(t, router, http.MethodGet, "/admin/notifications/digests/"+userID, adminKey)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
