package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres"
	answerrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/answer"
	authmethodrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/authmethod"
	badgerepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/badge"
	commentrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/comment"
	notificationrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/notification"
	questionrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/question"
	tokenrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/token"
	userrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/user"
	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/provider"
	"github.com/ip9202/jeju-tourlist-sub007/internal/auth"
	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	answersvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/answer"
	authsvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/auth"
	badgesvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/badge"
	notificationsvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/notification"
	questionsvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/question"
	usersvc "github.com/ip9202/jeju-tourlist-sub007/internal/service/user"
	"github.com/ip9202/jeju-tourlist-sub007/internal/transport/middleware"
	"github.com/ip9202/jeju-tourlist-sub007/internal/transport/rest"
	"github.com/ip9202/jeju-tourlist-sub007/internal/transport/ws"
	"github.com/ip9202/jeju-tourlist-sub007/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.RunMigrations(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	questions := questionrepo.New(pool)
	answers := answerrepo.New(pool)
	comments := commentrepo.New(pool)
	badges := badgerepo.New(pool)
	notifications := notificationrepo.New(pool, cfg.Community.InboxCap)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	oauth := provider.NewDispatcher(cfg.Auth, logger)

	authService := authsvc.NewService(logger, users, tokens, authMethods, tx, oauth, jwtManager, cfg.Auth)
	badgeService := badgesvc.NewService(logger, users, badges)
	questionService := questionsvc.NewService(logger, questions, answers, cfg.Community)
	notificationService := notificationsvc.NewService(logger, notifications, cfg.Community)
	userService := usersvc.NewService(logger, users, badgeService)

	hub := ws.NewHub(logger, cfg.Community)
	answerService := answersvc.NewService(
		logger, questions, answers, comments, users,
		notifications, badgeService, hub, tx, cfg.Community,
	)

	wsHandler := ws.NewHandler(logger, hub, authService, originChecker(cfg.CORS))

	globalMW := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		globalMW = append(globalMW, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	router := rest.NewRouter(rest.RouterDeps{
		Auth:          rest.NewAuthHandler(authService, logger),
		Question:      rest.NewQuestionHandler(questionService, users, logger),
		Answer:        rest.NewAnswerHandler(answerService, answers, logger),
		Notification:  rest.NewNotificationHandler(notificationService, logger),
		User:          rest.NewUserHandler(userService, logger),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
		Stream:        wsHandler.Stream,
		GlobalMW:      globalMW,
		AuthMW:        middleware.Auth(authService),
		RequireUserMW: middleware.RequireUser,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("http server listening",
		slog.String("addr", srv.Addr),
		slog.Any("oauth_providers", cfg.Auth.AllowedProviders()),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ListenAndServe() }()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// originChecker builds the WebSocket origin check from the CORS settings.
// A wildcard config disables the check.
func originChecker(cfg config.CORSConfig) func(r *http.Request) bool {
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	if slices.Contains(origins, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		return slices.Contains(origins, r.Header.Get("Origin"))
	}
}
