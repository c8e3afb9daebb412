package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	pgdb "github.com/avelar/taskhub/internal/adapter/postgres"
	pgnotification "github.com/avelar/taskhub/internal/adapter/postgres/notification"
	pgproject "github.com/avelar/taskhub/internal/adapter/postgres/project"
	pgreset "github.com/avelar/taskhub/internal/adapter/postgres/reset"
	pgtask "github.com/avelar/taskhub/internal/adapter/postgres/task"
	pguser "github.com/avelar/taskhub/internal/adapter/postgres/user"
	smtpadapter "github.com/avelar/taskhub/internal/adapter/smtp"
	tokenadapter "github.com/avelar/taskhub/internal/adapter/token"

	"github.com/avelar/taskhub/internal/config"
	"github.com/avelar/taskhub/internal/sse"

	authsvc "github.com/avelar/taskhub/internal/service/auth"
	notifsvc "github.com/avelar/taskhub/internal/service/notification"
	passwordsvc "github.com/avelar/taskhub/internal/service/password"
	projectsvc "github.com/avelar/taskhub/internal/service/project"
	tasksvc "github.com/avelar/taskhub/internal/service/task"
	usersvc "github.com/avelar/taskhub/internal/service/user"

	"github.com/avelar/taskhub/internal/transport"
	mcptransport "github.com/avelar/taskhub/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool     *pgxpool.Pool
	Server   *http.Server
	Registry *sse.Registry
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := pgdb.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	userRepo := pguser.New(pool)
	projectRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)
	notifStore := pgnotification.New(pool)
	resetRepo := pgreset.New(pool)
	tokens := tokenadapter.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	mailer, err := smtpadapter.New(smtpadapter.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		ResetURL: cfg.SMTP.ResetURL,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating mailer: %w", err)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	registry := sse.NewRegistry()
	dispatcher := notifsvc.NewService(notifStore, registry)

	authSvc := authsvc.NewService(userRepo, tokens)
	passwordSvc := passwordsvc.NewService(userRepo, resetRepo, mailer)
	userSvc := usersvc.NewService(userRepo, projectRepo)
	projectSvc := projectsvc.NewService(projectRepo, userRepo, taskRepo, dispatcher)
	taskSvc := tasksvc.NewService(taskRepo, projectRepo, userRepo, dispatcher)

	var mcpServer *mcptransport.Server
	if cfg.MCP.Secret != "" {
		mcpServer = mcptransport.New(cfg.MCP.Secret, projectSvc, taskSvc, userSvc)
	}

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(transport.Deps{
		Tokens:      tokens,
		AuthSvc:     authSvc,
		PasswordSvc: passwordSvc,
		UserSvc:     userSvc,
		ProjectSvc:  projectSvc,
		TaskSvc:     taskSvc,
		NotifSvc:    dispatcher,
		Registry:    registry,
		MCPServer:   mcpServer,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	startResetSweeper(ctx, resetRepo)

	slog.Info("application wired", "port", cfg.Server.Port, "mcp_enabled", mcpServer != nil)

	return &App{
		Pool:     pool,
		Server:   server,
		Registry: registry,
	}, nil
}
