package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/platform"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load platform config: %w", err)
	}
	log.SetDebug(cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base, err := platform.NewBaseService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := base.Close(); err != nil {
			log.Error("Failed to release resources: %v", err)
		}
	}()

	app := newApp(base)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting jobly API (%s) on %s", cfg.Env, addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		log.Info("Shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
