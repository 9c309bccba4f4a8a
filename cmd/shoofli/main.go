// Package main is the bootstrap entry point for a Shoofli store. Its whole
// job is the "first run" behaviour: open (creating if needed) the store
// file and make sure the documented default administrator exists, so an
// operator can log in immediately. It serves nothing and takes no
// arguments — configuration comes from the environment (see
// internal/config).
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shoofli/shoofli/internal/auth"
	"github.com/shoofli/shoofli/internal/config"
	"github.com/shoofli/shoofli/internal/repository"
	"github.com/shoofli/shoofli/internal/service"
	"github.com/shoofli/shoofli/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("creating data directory failed",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	st, err := store.Open(cfg.DBPath, logger)
	if err != nil {
		logger.Error("opening store failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	tokens, err := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		logger.Error("configuring sessions failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions := service.NewSessionService(
		st,
		repository.NewUsers(st),
		repository.NewTechnicians(st),
		repository.NewClients(st),
		auth.NewPasswordService(cfg.BcryptCost),
		tokens,
		logger,
	)

	admin, created, err := sessions.EnsureDefaultAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Error("seeding default administrator failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if created {
		logger.Info("store initialised with default administrator",
			slog.String("db", cfg.DBPath),
			slog.String("email", admin.Email),
		)
	} else {
		logger.Info("store already initialised", slog.String("db", cfg.DBPath))
	}
}
