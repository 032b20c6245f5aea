package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (that *Renderer) Welcome() {
	fmt.Fprintln(that.out, "Welcome to Tic-Tac-Toe!")
}

func (that *Renderer) Render(board entity.Board) {
	fmt.Fprint(that.out, FormatBoard(board))
}

func (that *Renderer) BotMoved(pos entity.Position) {
	fmt.Fprintf(that.out, "Computer plays: row=%d, column=%d\n", pos.Row, pos.Col)
}

func (that *Renderer) InvalidMove(_ error) {
	fmt.Fprintln(that.out, invalidMessage)
}

func (that *Renderer) Announce(status entity.Status, seating entity.Seating) {
	fmt.Fprintln(that.out, Result(status, seating))
}

// FormatBoard draws one line per row, e.g. "| X| O|  |".
func FormatBoard(board entity.Board) string {
	var sb strings.Builder

	for _, row := range board {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(cell.String())
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

func Result(status entity.Status, seating entity.Seating) string {
	switch status {
	case entity.XWins, entity.OWins:
		winner := status.Winner()
		if seating.RoleOf(winner) == entity.Human {
			return fmt.Sprintf("%s wins! You beat the computer.", winner)
		}
		return fmt.Sprintf("%s wins!", winner)
	case entity.Draw:
		return "It's a draw!"
	default:
		return "Game in progress."
	}
}
