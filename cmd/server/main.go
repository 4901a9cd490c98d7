package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndresGigant/pedidos-comerciales/internal/catalog"
	"github.com/AndresGigant/pedidos-comerciales/internal/config"
	"github.com/AndresGigant/pedidos-comerciales/internal/infra"
	"github.com/AndresGigant/pedidos-comerciales/internal/ledger"
	"github.com/AndresGigant/pedidos-comerciales/internal/router"
	"github.com/AndresGigant/pedidos-comerciales/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// The catalog workbook is loaded once at startup; a broken catalog is a
	// fatal error because every submission depends on it.
	catalogo, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load catalog")
	}
	log.Info().Int("articulos", len(catalogo.Articulos())).
		Int("clientes", len(catalogo.Clientes())).
		Int("colores", len(catalogo.Colores())).
		Msg("catalogo cargado")

	historial := ledger.New(cfg.HistorialPath)

	// Worker pool for async tasks (email copy of each order). Wired here at
	// the composition root so the pool sees all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	worker.StartWorkerPool(ctx, rdb, worker.NewEmailWorker(mailer), cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, catalogo, historial, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("pedidos-comerciales listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
