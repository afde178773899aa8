package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestRenderer_PrintBoard(t *testing.T) {
	t.Run("Empty board shows cell numbers", func(t *testing.T) {
		// Given: a fresh renderer
		out := &bytes.Buffer{}
		renderer := NewRenderer(out)

		// When: the board is printed
		renderer.PrintBoard()

		// Then: every cell shows its number
		expected := " 1 | 2 | 3 \n" +
			"---+---+---\n" +
			" 4 | 5 | 6 \n" +
			"---+---+---\n" +
			" 7 | 8 | 9 \n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Marks and highlighted line", func(t *testing.T) {
		// Given: X on the main diagonal and O on 2 and 3
		out := &bytes.Buffer{}
		renderer := NewRenderer(out)
		renderer.RenderMark(1, entity.PlayerX)
		renderer.RenderMark(2, entity.PlayerO)
		renderer.RenderMark(5, entity.PlayerX)
		renderer.RenderMark(3, entity.PlayerO)
		renderer.RenderMark(9, entity.PlayerX)
		renderer.HighlightLine([]int{1, 5, 9})
		out.Reset()

		// When: the board is printed
		renderer.PrintBoard()

		// Then: the diagonal is bracketed
		expected := "[X]| O | O \n" +
			"---+---+---\n" +
			" 4 |[X]| 6 \n" +
			"---+---+---\n" +
			" 7 | 8 |[X]\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Reset clears marks and highlight", func(t *testing.T) {
		out := &bytes.Buffer{}
		renderer := NewRenderer(out)
		renderer.RenderMark(5, entity.PlayerX)
		renderer.HighlightLine([]int{5})

		renderer.Reset()
		out.Reset()
		renderer.PrintBoard()

		assert.Contains(t, out.String(), " 4 | 5 | 6 ")
	})
}

func TestRenderer_RenderMark(t *testing.T) {
	out := &bytes.Buffer{}
	renderer := NewRenderer(out)

	renderer.RenderMark(7, entity.PlayerO)

	assert.Equal(t, "O -> 7\n", out.String())
}

func TestRenderer_GameOver(t *testing.T) {
	tests := []struct {
		name    string
		game    *entity.Game
		message string
	}{
		{
			name:    "Player wins",
			game:    &entity.Game{PlayerMark: entity.PlayerX, ComputerMark: entity.PlayerO, Winner: entity.PlayerX},
			message: "You win!",
		},
		{
			name:    "Computer wins",
			game:    &entity.Game{PlayerMark: entity.PlayerX, ComputerMark: entity.PlayerO, Winner: entity.PlayerO},
			message: "You lose!",
		},
		{
			name:    "Draw",
			game:    &entity.Game{PlayerMark: entity.PlayerO, ComputerMark: entity.PlayerX, Winner: entity.PlayerTie},
			message: "It's a draw!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a renderer
			out := &bytes.Buffer{}
			renderer := NewRenderer(out)

			// When: the game is over
			renderer.GameOver(tt.game, entity.Score{Player: 2, Computer: 1, Draws: 3})

			// Then: the result and the score are shown
			assert.Contains(t, out.String(), tt.message)
			assert.Contains(t, out.String(), "You 2, computer 1, draws 3")
		})
	}
}
