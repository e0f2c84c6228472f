package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ccarella/app.charmverse.io/internal/gnosis"
	"github.com/ccarella/app.charmverse.io/internal/mailer"
	mentionstore "github.com/ccarella/app.charmverse.io/internal/mentions/store"
	"github.com/ccarella/app.charmverse.io/internal/notifications/metrics"
	"github.com/ccarella/app.charmverse.io/internal/notifications/service"
	ledgerstore "github.com/ccarella/app.charmverse.io/internal/notifications/store/ledger"
	"github.com/ccarella/app.charmverse.io/internal/platform/config"
	"github.com/ccarella/app.charmverse.io/internal/platform/logger"
	"github.com/ccarella/app.charmverse.io/internal/platform/postgres"
	redisplatform "github.com/ccarella/app.charmverse.io/internal/platform/redis"
	proposalservice "github.com/ccarella/app.charmverse.io/internal/proposals/service"
	proposalstore "github.com/ccarella/app.charmverse.io/internal/proposals/store"
	httptransport "github.com/ccarella/app.charmverse.io/internal/transport/http"
	userstore "github.com/ccarella/app.charmverse.io/internal/users/store"
	votestore "github.com/ccarella/app.charmverse.io/internal/votes/store"
	wsstore "github.com/ccarella/app.charmverse.io/internal/workspace/store"
)

// app bundles the wired dependencies. Business logic lives in the internal
// service packages; this file only connects them.
type app struct {
	cfg     config.Notifier
	logger  *slog.Logger
	db      *sql.DB
	redis   *redisplatform.Client
	service *service.Service
	router  http.Handler
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.ApplyMigrations(ctx, db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	rdb, err := redisplatform.New(ctx, cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	users := userstore.NewPostgres(db)
	events := wsstore.NewPostgres(db)
	votes := votestore.NewPostgres(db)
	mentions := mentionstore.NewPostgres(db)
	proposals := proposalstore.NewPostgres(db)
	ledger := ledgerstore.NewPostgres(db)

	proposalTasks := proposalservice.New(proposals, events, users, ledger, log)

	var safes service.SafeTaskSource
	if cfg.SafeServiceURL != "" {
		client := gnosis.NewHTTPClient(cfg.SafeServiceURL)
		if rdb != nil {
			safes = gnosis.NewCachedClient(client, rdb.Client, cfg.SafeCacheTTL, log)
		} else {
			safes = client
		}
	}

	svc := service.New(
		service.Config{
			WebAppBaseURL:   cfg.WebAppBaseURL,
			EventWindow:     cfg.EventWindow,
			UserConcurrency: cfg.UserConcurrency,
		},
		users, events, votes, mentions, proposalTasks, safes, ledger,
		mailer.NewSMTPSender(cfg.SMTP, log),
		metrics.New(),
		log,
	)

	checks := map[string]httptransport.HealthCheck{
		"postgres": db.PingContext,
	}
	if rdb != nil {
		checks["redis"] = rdb.Health
	}
	auth := httptransport.NewAdminAuth(cfg.AdminKeyHash, cfg.JWTSigningKey)
	router := httptransport.NewRouter(httptransport.New(svc, checks, log), auth)

	return &app{
		cfg:     cfg,
		logger:  log,
		db:      db,
		redis:   rdb,
		service: svc,
		router:  router,
	}, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	a.db.Close()
}
