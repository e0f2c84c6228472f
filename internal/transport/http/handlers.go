// Package httptransport is the thin HTTP layer over the notification service.
// Handlers delegate to the service and translate domain errors, keeping
// business logic out of the transport.
package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	gnosismodels "github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
	"github.com/ccarella/app.charmverse.io/internal/notifications/service"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	dErrors "github.com/ccarella/app.charmverse.io/pkg/domain-errors"
	"github.com/ccarella/app.charmverse.io/pkg/platform/httputil"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

// NotificationService is the surface the admin endpoints need.
type NotificationService interface {
	TryRun(ctx context.Context) (service.RunStats, bool, error)
	DigestForUser(ctx context.Context, userID domain.UserID) (notifmodels.Digest, error)
}

// HealthCheck reports the readiness of one dependency.
type HealthCheck func(ctx context.Context) error

// Handler wires notification endpoints to the service.
type Handler struct {
	service NotificationService
	checks  map[string]HealthCheck
	logger  *slog.Logger
}

// New constructs the handler with its dependencies. checks may be nil.
func New(svc NotificationService, checks map[string]HealthCheck, logger *slog.Logger) *Handler {
	return &Handler{service: svc, checks: checks, logger: logger}
}

// HandleHealthz handles GET /healthz requests.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			deps[name] = err.Error()
			continue
		}
		deps[name] = "ok"
	}

	body := map[string]any{"status": "ok"}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	httputil.WriteJSON(w, status, body)
}

// HandleRun handles POST /admin/notifications/run requests. The run executes
// synchronously; a second trigger while one is in flight gets a conflict.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	stats, ran, err := h.service.TryRun(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual notification run failed", "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "notification run failed"))
		return
	}
	if !ran {
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "a notification run is already in progress"))
		return
	}

	h.logger.InfoContext(ctx, "manual notification run complete",
		"digests_sent", stats.DigestsSent,
		"failures", stats.Failures,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, runResponse{
		UsersConsidered: stats.UsersConsidered,
		UsersSnoozed:    stats.UsersSnoozed,
		UsersNoTasks:    stats.UsersNoTasks,
		DigestsSent:     stats.DigestsSent,
		Failures:        stats.Failures,
		DurationMS:      stats.Duration.Milliseconds(),
	})
}

// HandleDigestPreview handles GET /admin/notifications/digests/{userID}.
// It returns the digest that user would receive right now, without sending
// anything or touching the ledger.
func (h *Handler) HandleDigestPreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	digest, err := h.service.DigestForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "user not found"))
			return
		}
		h.logger.ErrorContext(ctx, "digest preview failed", "user_id", userID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "digest preview failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromDigest(digest))
}

type runResponse struct {
	UsersConsidered int   `json:"usersConsidered"`
	UsersSnoozed    int   `json:"usersSnoozed"`
	UsersNoTasks    int   `json:"usersNoTasks"`
	DigestsSent     int   `json:"digestsSent"`
	Failures        int   `json:"failures"`
	DurationMS      int64 `json:"durationMs"`
}

type mentionTaskResponse struct {
	MentionID string `json:"mentionId"`
	PageTitle string `json:"pageTitle"`
	PagePath  string `json:"pagePath"`
	SpaceName string `json:"spaceName"`
	Text      string `json:"text"`
	CreatedBy string `json:"createdBy"`
}

type voteTaskResponse struct {
	VoteID    string    `json:"voteId"`
	Title     string    `json:"title"`
	PageTitle string    `json:"pageTitle"`
	SpaceName string    `json:"spaceName"`
	Deadline  time.Time `json:"deadline"`
}

type proposalTaskResponse struct {
	TaskID    string `json:"taskId"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	PageTitle string `json:"pageTitle"`
	SpaceName string `json:"spaceName"`
}

type digestResponse struct {
	UserID        string                  `json:"userId"`
	Email         string                  `json:"email"`
	TotalTasks    int                     `json:"totalTasks"`
	MultisigTasks []gnosismodels.SafeTask `json:"multisigTasks"`
	MentionTasks  []mentionTaskResponse   `json:"mentionTasks"`
	VoteTasks     []voteTaskResponse      `json:"voteTasks"`
	ProposalTasks []proposalTaskResponse  `json:"proposalTasks"`
}

func fromDigest(digest notifmodels.Digest) digestResponse {
	res := digestResponse{
		UserID:        digest.User.ID.String(),
		Email:         digest.User.Email,
		TotalTasks:    digest.TotalTasks(),
		MultisigTasks: digest.MultisigTasks,
	}
	for _, task := range digest.MentionTasks {
		res.MentionTasks = append(res.MentionTasks, mentionTaskResponse{
			MentionID: task.MentionID,
			PageTitle: task.PageTitle,
			PagePath:  task.PagePath,
			SpaceName: task.SpaceName,
			Text:      task.Text,
			CreatedBy: task.CreatedBy,
		})
	}
	for _, task := range digest.VoteTasks {
		res.VoteTasks = append(res.VoteTasks, voteTaskResponse{
			VoteID:    task.ID.String(),
			Title:     task.Title,
			PageTitle: task.PageTitle,
			SpaceName: task.SpaceName,
			Deadline:  task.Deadline,
		})
	}
	for _, task := range digest.ProposalTasks {
		res.ProposalTasks = append(res.ProposalTasks, proposalTaskResponse{
			TaskID:    string(task.ID),
			Action:    string(task.Action),
			Status:    string(task.Status),
			PageTitle: task.PageTitle,
			SpaceName: task.SpaceName,
		})
	}
	return res
}
