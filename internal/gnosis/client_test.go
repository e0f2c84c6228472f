package gnosis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

func TestHTTPClient_PendingTasks(t *testing.T) {
	ctx := context.Background()
	userID := domain.UserID(uuid.MustParse("6f1c0b52-9d3e-4a7b-8c21-0d5e4f6a7b8c"))

	t.Run("decodes pending tasks", func(t *testing.T) {
		tasks := []models.SafeTask{{
			SafeAddress: "0xabc",
			SafeName:    "Treasury",
			Tasks: []models.TaskGroup{{
				Nonce:        3,
				Transactions: []models.Transaction{{ID: "tx-1", MyAction: "sign"}},
			}},
		}}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fmt.Sprintf("/v1/users/%s/pending-tasks", userID), r.URL.Path)
			require.NoError(t, json.NewEncoder(w).Encode(tasks))
		}))
		defer srv.Close()

		got, err := NewHTTPClient(srv.URL).PendingTasks(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.TaskID("tx-1"), got[0].TaskID())
		assert.True(t, got[0].ActionableBy())
	})

	t.Run("unknown user means no tasks", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		got, err := NewHTTPClient(srv.URL).PendingTasks(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("server errors map to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL).PendingTasks(ctx, userID)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("unexpected status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := NewHTTPClient(srv.URL).PendingTasks(ctx, userID)
		assert.Error(t, err)
	})
}
