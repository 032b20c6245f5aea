package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

var errSearchFailed = errors.New("search failed")

type mockSearcher struct {
	mock.Mock
}

func (that *mockSearcher) Search(board entity.Board, maximizer entity.Mark) (minimax.Result, error) {
	args := that.Called(board, maximizer)
	return args.Get(0).(minimax.Result), args.Error(1)
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Plays the winning move", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: the bot plays O and can complete the top row
		game := entity.NewGame("123", entity.Seating{HumanMark: entity.X, First: entity.Bot})
		game.Board = entity.Board{
			{entity.O, entity.O, entity.Empty},
			{entity.X, entity.X, entity.Empty},
			{entity.X, entity.Empty, entity.Empty},
		}

		botService := NewBotService(st.Logger, minimax.NewSearcher(1))

		// When: the bot makes its turn
		pos, err := botService.MakeTurn(game)

		// Then: it wins at (0,2)
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, pos)
		assert.Equal(t, entity.OWins, game.Status)
		assert.Equal(t, entity.O, game.Board.At(pos))
	})

	t.Run("Searches for the bot's mark", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: the human plays O, so the bot plays X
		game := entity.NewGame("123", entity.Seating{HumanMark: entity.O, First: entity.Bot})

		searcher := &mockSearcher{}
		searcher.On("Search", game.Board, entity.X).
			Return(minimax.Result{Move: entity.Position{Row: 1, Col: 1}, Score: minimax.Tie, Nodes: 10}, nil).
			Once()

		botService := NewBotService(st.Logger, searcher)

		// When: the bot makes its turn
		pos, err := botService.MakeTurn(game)

		// Then: X lands where the searcher said and it is O's turn
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, pos)
		assert.Equal(t, entity.X, game.Board.At(pos))
		assert.Equal(t, entity.O, game.Turn)
		searcher.AssertExpectations(t)
	})

	t.Run("Returns error if search fails", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a searcher that fails
		game := entity.NewGame("123", entity.Seating{HumanMark: entity.X, First: entity.Bot})

		searcher := &mockSearcher{}
		searcher.On("Search", mock.Anything, entity.O).
			Return(minimax.Result{}, errSearchFailed).
			Once()

		botService := NewBotService(st.Logger, searcher)

		// When: the bot makes its turn
		_, err := botService.MakeTurn(game)

		// Then: the error is passed on and the board is untouched
		require.ErrorIs(t, err, errSearchFailed)
		assert.Equal(t, entity.NewBoard(), game.Board)
	})

	t.Run("Returns ErrNoLegalMove on a full board", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a game whose board is full but still marked as running
		game := entity.NewGame("123", entity.Seating{HumanMark: entity.X, First: entity.Bot})
		game.Board = entity.Board{
			{entity.O, entity.X, entity.O},
			{entity.O, entity.X, entity.X},
			{entity.X, entity.O, entity.X},
		}

		botService := NewBotService(st.Logger, minimax.NewSearcher(1))

		// When: the bot makes its turn
		_, err := botService.MakeTurn(game)

		// Then: the logic error surfaces
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Returns error when it is not the bot's turn", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a game where the human is to move
		game := entity.NewGame("123", entity.Seating{HumanMark: entity.X, First: entity.Human})

		botService := NewBotService(st.Logger, minimax.NewSearcher(1))

		// When: the bot tries to move
		_, err := botService.MakeTurn(game)

		// Then: the turn is refused
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}
