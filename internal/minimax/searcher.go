package minimax

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Result struct {
	Move  entity.Position
	Score int
	// Nodes is the number of positions visited, the root included.
	Nodes int64
}

// Searcher picks moves for one side. With more than one worker the root moves
// are scored concurrently; the choice is the same as with a single worker.
type Searcher struct {
	workers int
}

func NewSearcher(workers int) *Searcher {
	return &Searcher{workers: max(workers, 1)}
}

func (that *Searcher) Workers() int {
	return that.workers
}

// Search scores every legal move of maximizer and returns the first one with the
// highest score in row-major order.
func (that *Searcher) Search(board entity.Board, maximizer entity.Mark) (Result, error) {
	if maximizer == entity.Empty {
		return Result{}, fmt.Errorf("%w: search needs a player mark", apperror.ErrInvalidMove)
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Result{}, apperror.ErrNoLegalMove
	}

	scores := make([]int, len(moves))
	nodes := make([]int64, len(moves))

	if that.workers == 1 {
		for i, move := range moves {
			scores[i] = minimax(board.Place(move, maximizer), maximizer, false, &nodes[i])
		}
	} else {
		var group errgroup.Group
		group.SetLimit(that.workers)

		for i, move := range moves {
			group.Go(func() error {
				scores[i] = minimax(board.Place(move, maximizer), maximizer, false, &nodes[i])
				return nil
			})
		}

		// branches never fail
		_ = group.Wait()
	}

	return reduce(moves, scores, nodes), nil
}

// reduce walks the scores in move order so that the first maximal move wins.
func reduce(moves []entity.Position, scores []int, nodes []int64) Result {
	result := Result{Score: Loss - 1, Nodes: 1}

	for i, move := range moves {
		result.Nodes += nodes[i]

		if scores[i] > result.Score {
			result.Score = scores[i]
			result.Move = move
		}
	}

	return result
}
