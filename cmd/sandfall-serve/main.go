package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/MagicLemma/alchimia/internal/config"
	"github.com/MagicLemma/alchimia/internal/sand"
	"github.com/MagicLemma/alchimia/internal/stream"
)

func main() {
	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	world := sand.New(cfg.Sim.Seed)
	server := stream.New(world, logger)

	logger.Info("world ready",
		zap.Int("size", world.Size()),
		zap.Int64("seed", cfg.Sim.Seed))

	if err := server.Run(cfg.Server.BindAddress, cfg.Window.TPS); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = level
	return zapCfg.Build()
}
