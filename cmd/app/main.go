package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/articles/config"
	"github.com/daniilsolovey/articles/internal/app"
	"github.com/daniilsolovey/articles/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations before start")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	lg            *slog.Logger
)

// @title Articles API
// @version 1.0
// @description Article catalogue with paged listings and create, edit and delete forms.
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()

	if *flMigrate || cfg.App.Migrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connConfig))
		lg.Info("migrations applied")
	}

	dbConnect := pg.Connect(&cfg.Database)
	if err := dbConnect.Ping(ctx); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	service, err := app.New(cfg, dbConnect, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
