// Package minimax scores tic-tac-toe positions by exhaustive game-tree search.
//
// Every score is taken from the point of view of a single maximizing mark passed
// by the caller: +1 means the maximizer wins under optimal play, -1 means its
// opponent wins and 0 is a draw. The whole tree is visited, without pruning.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	Loss = -1
	Tie  = 0
	Win  = 1
)

// Evaluate scores a leaf. Boards nobody has won yet score Tie.
func Evaluate(board entity.Board, perspective entity.Mark) int {
	switch {
	case board.HasWon(perspective):
		return Win
	case board.HasWon(perspective.Opponent()):
		return Loss
	default:
		return Tie
	}
}

// Minimax returns the value of board for maximizer when both sides play optimally.
// maximizing tells whether maximizer is the side to move.
func Minimax(board entity.Board, maximizer entity.Mark, maximizing bool) int {
	var nodes int64
	return minimax(board, maximizer, maximizing, &nodes)
}

// FindBestMove returns the move that is best for maximizer, the side to move.
// Ties go to the first move in row-major order.
func FindBestMove(board entity.Board, maximizer entity.Mark) (entity.Position, error) {
	result, err := NewSearcher(1).Search(board, maximizer)
	if err != nil {
		return entity.Position{}, err
	}

	return result.Move, nil
}

func isTerminal(board entity.Board) bool {
	return board.IsFull() || board.HasWon(entity.X) || board.HasWon(entity.O)
}

func minimax(board entity.Board, maximizer entity.Mark, maximizing bool, nodes *int64) int {
	*nodes++

	if isTerminal(board) {
		return Evaluate(board, maximizer)
	}

	mark := maximizer.Opponent()
	best := Win + 1
	if maximizing {
		mark = maximizer
		best = Loss - 1
	}

	for _, move := range board.AvailableMoves() {
		score := minimax(board.Place(move, mark), maximizer, !maximizing, nodes)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
