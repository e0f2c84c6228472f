// Package gnosis fetches pending multisig-safe tasks from the external
// transaction service, with an optional Redis read-through cache so repeated
// runs and digest previews do not hammer the service.
package gnosis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

// Client fetches the pending safe tasks for a user.
type Client interface {
	PendingTasks(ctx context.Context, userID domain.UserID) ([]models.SafeTask, error)
}

// HTTPClient talks to the transaction service over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) PendingTasks(ctx context.Context, userID domain.UserID) ([]models.SafeTask, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s/pending-tasks", c.baseURL, url.PathEscape(userID.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build pending tasks request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pending tasks: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		// The service has never seen this user; no safes, no tasks.
		return nil, nil
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("transaction service %s: %w", res.Status, sentinel.ErrUnavailable)
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("transaction service returned %s", res.Status)
	}

	var tasks []models.SafeTask
	if err := json.NewDecoder(res.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode pending tasks: %w", err)
	}
	return tasks, nil
}
