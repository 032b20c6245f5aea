package entity

const BoardSize = 3

// Mark is the state of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// WinLines lists every line that wins the game: 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a value type, copying it copies every cell.
type Board [BoardSize][BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

func (that Board) At(pos Position) Mark {
	return that[pos.Row][pos.Col]
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that Board) HasWon(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true
		}
	}

	return false
}

// Place returns a copy of the board with pos set to mark. The receiver is left untouched.
// Coordinates out of range panic; checking the cell is empty is up to the caller.
func (that Board) Place(pos Position, mark Mark) Board {
	that[pos.Row][pos.Col] = mark
	return that
}

// AvailableMoves returns the empty cells in row-major order.
func (that Board) AvailableMoves() []Position {
	moves := make([]Position, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) Marks() int {
	marks := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				marks++
			}
		}
	}

	return marks
}
