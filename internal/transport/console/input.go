package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	promptMessage  = "Enter your move (row, col):"
	invalidMessage = "Invalid move. Please try again."
)

// ParseMove reads a 0-based "row,col" pair. A space works as separator too.
func ParseMove(line string) (entity.Position, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	pos := entity.Position{Row: row, Col: col}
	if !pos.InBounds() {
		return entity.Position{}, fmt.Errorf("%w: (%d, %d) is off the board", apperror.ErrInvalidInput, row, col)
	}

	return pos, nil
}

type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadMove prompts until a well-formed move is entered. It does not know the board,
// so occupied cells are left to the caller.
func (that *Reader) ReadMove(ctx context.Context) (entity.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		fmt.Fprintln(that.out, promptMessage)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Position{}, fmt.Errorf("failed to read input: %w", err)
			}

			return entity.Position{}, apperror.ErrInputClosed
		}

		pos, err := ParseMove(that.scanner.Text())
		if err != nil {
			fmt.Fprintln(that.out, invalidMessage)
			continue
		}

		return pos, nil
	}
}
