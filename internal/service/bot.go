package service

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Position, error)
}

type searcher interface {
	Search(board entity.Board, maximizer entity.Mark) (minimax.Result, error)
}

type botService struct {
	logger   *slog.Logger
	searcher searcher
}

func NewBotService(logger *slog.Logger, searcher searcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// MakeTurn plays the optimal move for the bot's mark.
func (that *botService) MakeTurn(game *entity.Game) (entity.Position, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	botMark := game.Seating.BotMark()

	result, err := that.searcher.Search(game.Board, botMark)
	if err != nil {
		return entity.Position{}, fmt.Errorf("bot failed to find a move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, botMark, result.Move); err != nil {
		return entity.Position{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved",
		"row", result.Move.Row,
		"col", result.Move.Col,
		"score", result.Score,
		"positions", humanize.Comma(result.Nodes),
	)

	return result.Move, nil
}
