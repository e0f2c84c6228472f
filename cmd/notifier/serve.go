package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccarella/app.charmverse.io/internal/platform/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the notification daemon with its admin HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		srv := httpserver.New(app.cfg.Addr, app.router)
		serverErr := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		app.logger.Info("notifier started",
			"addr", app.cfg.Addr,
			"run_interval", app.cfg.RunInterval,
			"event_window", app.cfg.EventWindow,
		)

		go runLoop(ctx, app)

		select {
		case err := <-serverErr:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		app.logger.Info("notifier stopped")
		return nil
	},
}

// runLoop triggers a notification pass on startup and then on every interval
// tick. A tick that lands while a run is still in flight is skipped.
func runLoop(ctx context.Context, app *app) {
	if _, _, err := app.service.TryRun(ctx); err != nil {
		app.logger.Error("notification run failed", "error", err)
	}

	ticker := time.NewTicker(app.cfg.RunInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, ran, err := app.service.TryRun(ctx)
			if err != nil {
				app.logger.Error("notification run failed", "error", err)
				continue
			}
			if !ran {
				app.logger.Warn("notification run still in flight, skipping tick")
			}
		}
	}
}
