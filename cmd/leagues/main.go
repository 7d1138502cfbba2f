package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/football-leagues/internal/cli"
	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_CONSOLE_RUN") == "1" {
		return
	}

	// A missing .env is normal; the environment alone is enough.
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "football-leagues",
		Version: appVersion,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(cfg, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Error("console stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
