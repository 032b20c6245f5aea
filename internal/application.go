package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs one game on the terminal.
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

// Run plays a game reading moves from in and drawing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seating, err := conf.Seating()
	if err != nil {
		return fmt.Errorf("could not seat players: %w", err)
	}

	searcher := minimax.NewSearcher(conf.Search.Workers)
	botService := service.NewBotService(logger, searcher)
	gameManager := usecase.NewGameManager(logger, seating, botService)

	renderer := console.NewRenderer(out)
	reader := console.NewReader(in, out)

	renderer.Welcome()
	game := gameManager.NewGame()

	// the game runs apart from ctx so a blocked read on stdin does not delay shutdown
	type outcome struct {
		status entity.Status
		err    error
	}

	doneCh := make(chan outcome, 1)
	go func() {
		status, playErr := gameManager.Play(ctx, game, reader, renderer)
		doneCh <- outcome{status: status, err: playErr}
	}()

	select {
	case res := <-doneCh:
		if errors.Is(res.err, context.Canceled) {
			return nil
		}

		if errors.Is(res.err, apperror.ErrInputClosed) {
			log.Info("Input closed before the game ended", "game_id", game.ID)
			return nil
		}

		if res.err != nil {
			return fmt.Errorf("game failed: %w", res.err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down", "game_id", game.ID)
		return nil
	}
}
