package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/articles/config"
	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/db"
	"github.com/daniilsolovey/articles/internal/rest"
	"github.com/daniilsolovey/articles/internal/rpc"
)

const rpcPath = "/rpc"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger, cfg.App.SlowQuery))
		logger.Info("SQL query logging enabled")
	}

	repo := db.New(dbConnect)
	manager := articles.NewManager(db.NewStore(repo))

	handler := rest.NewArticleHandler(manager, cfg.Paging, repo, logger)
	e, err := handler.RegisterRoutes()
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	rpcServer := rpc.New(logger, manager, cfg.Paging)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return a.DB.Close()
}
