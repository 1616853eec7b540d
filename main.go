package main

import (
	"context"
	"log/slog"
	"os"

	"brewtalk/bot"
	"brewtalk/config"
	"brewtalk/db"
	"brewtalk/services"
	"brewtalk/web"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	if err := db.Init(cfg.DB.Path); err != nil {
		slog.Error("db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := db.Migrate(ctx, true); err != nil {
			slog.Error("migrate", "error", err)
			os.Exit(1)
		}
		return
	}

	// First-run bootstrap: tables plus the seed catalog.
	if err := services.InitializeStorage(ctx); err != nil {
		slog.Error("initialize storage", "error", err)
		os.Exit(1)
	}

	notifier, err := bot.New(cfg.Telegram)
	if err != nil {
		slog.Error("notifier", "error", err)
		os.Exit(1)
	}
	if notifier != nil {
		slog.Info("operator notifications enabled")
	}

	srv, err := web.New(cfg, notifier)
	if err != nil {
		slog.Error("web server", "error", err)
		os.Exit(1)
	}

	slog.Info("server listening", "addr", cfg.HTTP.Addr)
	if err := srv.Run(); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
