package tictactoe

import (
	"fmt"
	"slices"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Result is what a move leaves behind. Winner is set only for OutcomeWin.
type Result struct {
	Outcome Outcome
	Winner  *Combatant
}

func (that Result) IsTerminal() bool {
	return that.Outcome != OutcomeNone
}

// Combatant is one side of the game. It owns the fragments of lines it has started to claim;
// a fragment holds the cells of that line still left to play.
type Combatant struct {
	Mark      string
	fragments [][]int
}

func NewCombatant(mark string) *Combatant {
	return &Combatant{Mark: mark}
}

// Fragments returns a copy of the lines this combatant has partially claimed.
func (that *Combatant) Fragments() [][]int {
	return cloneLines(that.fragments)
}

// Clone - returns a deep copy sharing no slices with the receiver.
func (that *Combatant) Clone() *Combatant {
	return &Combatant{
		Mark:      that.Mark,
		fragments: cloneLines(that.fragments),
	}
}

// ApplyMove - plays cell for this combatant against opponent on board.
// The cell must be free; anything else is a caller bug and panics.
func (that *Combatant) ApplyMove(board *Board, cell int, opponent *Combatant) Result {
	if !board.IsFree(cell) {
		panic(fmt.Sprintf("tictactoe: cell %d is not free", cell))
	}

	// own progress first: emptying a fragment completes the line
	for i, fragment := range that.fragments {
		if !slices.Contains(fragment, cell) {
			continue
		}

		fragment = removeCell(fragment, cell)
		if len(fragment) == 0 {
			that.fragments = slices.Delete(that.fragments, i, i+1)
			return Result{Outcome: OutcomeWin, Winner: that}
		}

		that.fragments[i] = fragment
	}

	// first claim on every unowned line through the cell
	live := make([][]int, 0, len(board.lines))
	for _, line := range board.lines {
		if !slices.Contains(line, cell) {
			live = append(live, line)
			continue
		}

		that.fragments = append(that.fragments, removeCell(line, cell))
	}
	board.lines = live

	// the opponent can no longer complete any line through the cell
	opponent.fragments = slices.DeleteFunc(opponent.fragments, func(fragment []int) bool {
		return slices.Contains(fragment, cell)
	})

	board.occupy(cell)
	if len(board.free) == 0 {
		return Result{Outcome: OutcomeDraw}
	}

	board.recordMove(cell)

	return Result{Outcome: OutcomeNone}
}
