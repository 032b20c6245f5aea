package entity

// Status is the terminal state machine of a game. Every state but InProgress is absorbing.
type Status string

const (
	InProgress Status = "in_progress"
	XWins      Status = "x_wins"
	OWins      Status = "o_wins"
	Draw       Status = "draw"
)

func (that Status) IsTerminal() bool {
	return that != InProgress
}

// Winner returns the winning mark, Empty for a draw or a game in progress.
func (that Status) Winner() Mark {
	switch that {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func WinStatus(mark Mark) Status {
	if mark == X {
		return XWins
	}
	return OWins
}

type Move struct {
	Mark     Mark     `json:"mark"`
	Position Position `json:"position"`
}

type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Status  Status  `json:"status"`
	Seating Seating `json:"seating"`
	Moves   []Move  `json:"moves,omitempty"`
}

func NewGame(id string, seating Seating) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Turn:    seating.MarkOf(seating.First),
		Status:  InProgress,
		Seating: seating,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// TurnRole returns who is to move, or an empty role once the game is finished.
func (that *Game) TurnRole() Role {
	return that.Seating.RoleOf(that.Turn)
}
