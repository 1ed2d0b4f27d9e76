package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/config"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/engine"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/network"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/server"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/stats"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/version"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: окружение, флаг -seed перекрывает PARTY_SEED
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Master seed for party dice (0 keeps PARTY_SEED or random)")
	flag.Parse()

	logger.Log.Info("Starting party server...")
	logger.Log.Info(version.String())

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using Master Seed: %d", cfg.Seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Статистика и ядро
	recorder := stats.NewRecorder(0)
	go recorder.Run(ctx)

	gameService := engine.NewService(cfg, network.NewBroadcaster(), recorder)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, recorder, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown failed")
	}
	gameService.Shutdown()

	logger.Log.Info("Done.")
}
