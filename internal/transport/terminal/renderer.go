package terminal

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Renderer draws the game on a text terminal. It keeps its own copy of the marks,
// filled in only by RenderMark.
type Renderer struct {
	out       io.Writer
	cells     [9]string
	highlight []int
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Reset - clears the marks and the highlight for a new game.
func (that *Renderer) Reset() {
	that.cells = [9]string{}
	that.highlight = nil
}

func (that *Renderer) RenderMark(cell int, mark string) {
	that.cells[cell-1] = mark
	that.printf("%s -> %d\n", mark, cell)
}

func (that *Renderer) HighlightLine(cells []int) {
	that.highlight = slices.Clone(cells)
}

func (that *Renderer) GameOver(game *entity.Game, score entity.Score) {
	that.PrintBoard()

	switch game.Winner {
	case entity.PlayerTie:
		that.printf("It's a draw!\n")
	case game.PlayerMark:
		that.printf("You win!\n")
	default:
		that.printf("You lose!\n")
	}

	that.PrintScore(score)
}

// PrintBoard - draws the grid. Empty cells show their number, highlighted cells are bracketed.
func (that *Renderer) PrintBoard() {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(that.cellText(row*3 + col + 1))
		}
		sb.WriteString("\n")
	}

	that.printf("%s", sb.String())
}

func (that *Renderer) PrintScore(score entity.Score) {
	that.printf("You %d, computer %d, draws %d\n", score.Player, score.Computer, score.Draws)
}

func (that *Renderer) Message(format string, args ...any) {
	that.printf(format+"\n", args...)
}

func (that *Renderer) cellText(cell int) string {
	text := that.cells[cell-1]
	if text == entity.EmptyCell {
		text = strconv.Itoa(cell)
	}

	if slices.Contains(that.highlight, cell) {
		return "[" + text + "]"
	}

	return " " + text + " "
}

func (that *Renderer) printf(format string, args ...any) {
	// a broken terminal leaves nothing to report to
	_, _ = fmt.Fprintf(that.out, format, args...)
}
