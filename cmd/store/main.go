package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewStdoutLogger(cfg.Logging.Format, cfg.Logging.Level)

	app := bootstrap.NewStoreApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("store stopped with error", "error", err.Error())
		stop()
		app.Shutdown()
		os.Exit(1)
	}
}
