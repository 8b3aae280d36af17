package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phenrril/modashop/config"
	"github.com/phenrril/modashop/internal/app"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	_ = os.MkdirAll(cfg.DataDir, 0o755)
	db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.DataDir, "modashop.db")), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open local store")
	}

	application, err := app.NewApp(db, cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Restore(ctx); err != nil {
		zlog.Warn().Err(err).Msg("no pude restaurar el carrito")
	}
	zlog.Info().Int("lines", application.Cart.Len()).Msg("session ready")

	if products, err := application.Catalog.List(ctx); err != nil {
		zlog.Warn().Err(err).Msg("catálogo remoto no disponible")
	} else {
		zlog.Info().Int("products", len(products)).Msg("catalog loaded")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := application.Persist(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("no pude persistir el estado de la sesión")
	}
}
