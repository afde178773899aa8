package tictactoe

import "slices"

// Center and corners are the cells the opening book plays.
const (
	Center   = 5
	numCells = 9
)

var (
	corners = []int{1, 3, 7, 9}

	// WinCombos - every row, column and diagonal of the 3x3 grid, cells numbered 1-9 row by row.
	WinCombos = [][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}
)

// Board is the state shared by both combatants: the cells nobody has played yet
// and the lines nobody has started to claim.
type Board struct {
	free      []int
	lines     [][]int
	moves     int
	firstMove int
}

// NewBoard - creates an empty board with all eight lines live.
func NewBoard() *Board {
	free := make([]int, 0, numCells)
	for cell := 1; cell <= numCells; cell++ {
		free = append(free, cell)
	}

	lines := make([][]int, 0, len(WinCombos))
	for _, combo := range WinCombos {
		lines = append(lines, []int{combo[0], combo[1], combo[2]})
	}

	return &Board{
		free:  free,
		lines: lines,
	}
}

// FreeCells returns the unplayed cells in ascending order.
func (that *Board) FreeCells() []int {
	return slices.Clone(that.free)
}

// LiveLines returns the lines not yet claimed by either combatant.
func (that *Board) LiveLines() [][]int {
	return cloneLines(that.lines)
}

// Moves returns how many moves have been played, not counting a move that ended the game.
func (that *Board) Moves() int {
	return that.moves
}

// FirstMove returns the cell of the opening move, or 0 before anyone has played.
func (that *Board) FirstMove() int {
	return that.firstMove
}

// IsFree reports whether nobody has played cell yet.
func (that *Board) IsFree(cell int) bool {
	return slices.Contains(that.free, cell)
}

// Clone - returns a deep copy sharing no slices with the receiver.
func (that *Board) Clone() *Board {
	return &Board{
		free:      slices.Clone(that.free),
		lines:     cloneLines(that.lines),
		moves:     that.moves,
		firstMove: that.firstMove,
	}
}

func (that *Board) occupy(cell int) {
	that.free = removeCell(that.free, cell)
}

func (that *Board) recordMove(cell int) {
	that.moves++
	if that.moves == 1 {
		that.firstMove = cell
	}
}

func cloneLines(lines [][]int) [][]int {
	cloned := make([][]int, 0, len(lines))
	for _, line := range lines {
		cloned = append(cloned, slices.Clone(line))
	}

	return cloned
}

func removeCell(cells []int, cell int) []int {
	return slices.DeleteFunc(cells, func(c int) bool { return c == cell })
}
