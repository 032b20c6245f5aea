package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrUnknownTurn = errors.New("nobody is to move")

type botService interface {
	MakeTurn(game *entity.Game) (entity.Position, error)
}

// MoveReader supplies the human player's moves, already parsed and in range.
type MoveReader interface {
	ReadMove(ctx context.Context) (entity.Position, error)
}

// Renderer shows the game to the human player.
type Renderer interface {
	Render(board entity.Board)
	BotMoved(pos entity.Position)
	InvalidMove(err error)
	Announce(status entity.Status, seating entity.Seating)
}

type GameManager struct {
	logger  *slog.Logger
	seating entity.Seating
	bot     botService
}

func NewGameManager(logger *slog.Logger, seating entity.Seating, bot botService) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		seating: seating,
		bot:     bot,
	}
}

func (that *GameManager) NewGame() *entity.Game {
	game := entity.NewGame(uuid.NewString(), that.seating)

	that.logger.Info("game created",
		"game_id", game.ID,
		"human_mark", that.seating.HumanMark.String(),
		"first", string(that.seating.First),
	)

	return game
}

func (that *GameManager) HumanTurn(game *entity.Game, pos entity.Position) error {
	if err := tictactoe.MakeTurn(game, game.Seating.HumanMark, pos); err != nil {
		return fmt.Errorf("failed to make human turn: %w", err)
	}

	return nil
}

func (that *GameManager) BotTurn(game *entity.Game) (entity.Position, error) {
	pos, err := that.bot.MakeTurn(game)
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to make bot turn: %w", err)
	}

	return pos, nil
}

// Play alternates turns until the game reaches a terminal state.
func (that *GameManager) Play(ctx context.Context, game *entity.Game, reader MoveReader, renderer Renderer) (entity.Status, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	for {
		renderer.Render(game.Board)

		if game.IsFinished() {
			renderer.Announce(game.Status, game.Seating)
			log.Info("game finished", "status", string(game.Status), "moves", len(game.Moves))

			return game.Status, nil
		}

		if err := ctx.Err(); err != nil {
			return game.Status, fmt.Errorf("game interrupted: %w", err)
		}

		switch game.TurnRole() {
		case entity.Human:
			if err := that.playHuman(ctx, game, reader, renderer); err != nil {
				return game.Status, err
			}
		case entity.Bot:
			pos, err := that.BotTurn(game)
			if err != nil {
				return game.Status, err
			}

			renderer.BotMoved(pos)
		default:
			return game.Status, fmt.Errorf("%w: turn %q", ErrUnknownTurn, game.Turn.String())
		}
	}
}

// playHuman asks for moves until one is accepted.
func (that *GameManager) playHuman(ctx context.Context, game *entity.Game, reader MoveReader, renderer Renderer) error {
	for {
		pos, err := reader.ReadMove(ctx)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.HumanTurn(game, pos)
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.logger.Debug("rejected move", "game_id", game.ID, "error", err)
			renderer.InvalidMove(err)

			continue
		}

		return err
	}
}
