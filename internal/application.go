package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the engine to a terminal reading in and writing out, and serves until it stops.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	chooser := tictactoe.NewChooser(conf.Engine.Seed)
	evaluator := tictactoe.NewEvaluator(logger, chooser)
	renderer := terminal.NewRenderer(out)
	gameManager := usecase.NewGameManager(logger, evaluator, renderer)

	server := terminal.New(logger, gameManager, renderer, conf.Player.Mark)

	log.Info("Starting terminal session", "mark", conf.Player.Mark, "seed", conf.Engine.Seed)

	if err := server.Serve(ctx, in); err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	log.Info("Terminal session closed")

	return nil
}
