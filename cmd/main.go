package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/stdr"

	"gcp-instance-page/internal/config"
	"gcp-instance-page/internal/metadata"
	"gcp-instance-page/internal/server"
)

func main() {
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	cfg, err := config.Load()
	if err != nil {
		logger.Error(err, "invalid configuration")
		os.Exit(1)
	}

	client, err := metadata.NewClient(cfg.MetadataHost, nil)
	if err != nil {
		logger.Error(err, "failed to create metadata client")
		os.Exit(1)
	}

	server.InstallTracePropagation()

	// Stop on Ctrl-C or when the platform terminates the instance
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, client, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error(err, "server failed")
		os.Exit(1)
	}
	logger.Info("exiting")
}
