// Command cleanup-notifications removes read notifications older than the
// configured retention window. Unread notifications are never touched.
//
// Intended to run from cron. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres"
	notificationrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/notification"
	"github.com/ip9202/jeju-tourlist-sub007/internal/app"
	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	notificationsvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	notifications := notificationrepo.New(pool, cfg.Community.InboxCap)
	svc := notificationsvc.NewService(logger, notifications, cfg.Community)

	removed, err := svc.CleanupRead(ctx)
	if err != nil {
		logger.Error("notification cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("notification cleanup completed",
		slog.Int("removed", removed),
		slog.Duration("retention", cfg.Community.NotificationRetention),
	)
}
