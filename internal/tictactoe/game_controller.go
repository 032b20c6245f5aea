package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// ApplyMove returns a new board with mark placed at pos. The input board is never modified.
func ApplyMove(board entity.Board, pos entity.Position, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, pos, mark); err != nil {
		return board, err
	}

	return board.Place(pos, mark), nil
}

// CheckTerminal reports the state of board independent of whose turn it is.
func CheckTerminal(board entity.Board) entity.Status {
	switch {
	case board.HasWon(entity.X):
		return entity.XWins
	case board.HasWon(entity.O):
		return entity.OWins
	case board.IsFull():
		return entity.Draw
	default:
		return entity.InProgress
	}
}

// MakeTurn applies a move to a running game and advances its state.
func MakeTurn(game *entity.Game, mark entity.Mark, pos entity.Position) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := ApplyMove(game.Board, pos, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.Moves = append(game.Moves, entity.Move{Mark: mark, Position: pos})
	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, pos entity.Position, mark entity.Mark) error {
	if mark == entity.Empty {
		return fmt.Errorf("%w: empty mark", apperror.ErrInvalidMove)
	}

	if !pos.InBounds() {
		return fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidMove, pos.Row, pos.Col)
	}

	if board.At(pos) != entity.Empty {
		return fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidMove, pos.Row, pos.Col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move. Only the mover can have completed a line.
func updateGameStatus(game *entity.Game, mover entity.Mark) {
	switch {
	case game.Board.HasWon(mover):
		game.Status = entity.WinStatus(mover)
		game.Turn = entity.Empty
	case game.Board.IsFull():
		game.Status = entity.Draw
		game.Turn = entity.Empty
	default:
		game.Turn = mover.Opponent()
	}
}
