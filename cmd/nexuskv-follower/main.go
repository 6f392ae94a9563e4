package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/INLOpen/nexuskv/config"
	"github.com/INLOpen/nexuskv/core"
	"github.com/INLOpen/nexuskv/replication"
	"github.com/INLOpen/nexuskv/vbucket"
)

func main() {
	configPath := flag.String("config", "nexuskv.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to configure logging", "error", err)
		os.Exit(1)
	}

	if len(cfg.Replication.VBuckets) == 0 {
		logger.Error("No vbuckets to replicate.")
		os.Exit(1)
	}

	// Run one stream client per replicated partition in parallel; cancelling
	// the shared context tears them all down together.
	g, ctx := errgroup.WithContext(context.Background())
	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, id := range cfg.Replication.VBuckets {
		id := id
		vb := vbucket.New(core.VBucketID(id), nil, logger)
		client := replication.NewStreamClient(cfg.Replication.LeaderAddress, vb, logger)
		if err := client.Connect(appCtx); err != nil {
			logger.Error("Failed to connect stream client", "vbucket", id, "error", err)
			os.Exit(1)
		}
		// Acks travel back on the stream client's connection.
		vb.SetAckSender(client.AckClient())

		g.Go(func() error {
			// This goroutine waits for the shutdown signal and stops the
			// stream client.
			go func() {
				<-appCtx.Done()
				logger.Info("Context cancelled, stopping stream client...", "vbucket", id)
				client.Stop()
			}()
			return client.Start(appCtx)
		})
	}
	logger.Info("Follower started", "leader", cfg.Replication.LeaderAddress, "vbuckets", len(cfg.Replication.VBuckets))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, stopping follower...")
	cancel()
	if err := g.Wait(); err != nil {
		logger.Error("Follower shut down with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Follower has been shut down.")
}

// buildLogger creates the process logger per the logging configuration.
func buildLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer
	switch cfg.Output {
	case "", "stdout":
		w = os.Stdout
	case "none":
		w = io.Discard
	case "file":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
