package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the rendered side of a match: the marks on the board and how the match stands.
// Board is indexed by cell-1.
type Game struct {
	ID           string    `json:"id"`
	Board        [9]string `json:"board"`
	Winner       string    `json:"winner"`
	Status       string    `json:"status"`
	Turn         string    `json:"player_turn"`
	PlayerMark   string    `json:"player_mark"`
	ComputerMark string    `json:"computer_mark"`
	WinningLine  []int     `json:"winning_line,omitempty"`
}

func NewGame(id, playerMark string) *Game {
	return &Game{
		ID:           id,
		Board:        [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:         PlayerX,
		Status:       StatusWaiting,
		PlayerMark:   playerMark,
		ComputerMark: ToggleMark(playerMark),
	}
}

// Cell returns the mark on cell 1-9.
func (that *Game) Cell(cell int) string {
	return that.Board[cell-1]
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 1 || cell > len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Cell(cell) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell-1] = playerMark
	that.Turn = ToggleMark(playerMark)

	return nil
}

// Finish - ends the game. winner is a mark or PlayerTie.
func (that *Game) Finish(winner string, line []int) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = ""
	that.WinningLine = line
}

// CompletedLines returns the cells of every completed line through cell, in ascending order.
func (that *Game) CompletedLines(cell int) []int {
	mark := that.Cell(cell)
	if mark == EmptyCell {
		return nil
	}

	var cells []int
	for _, combo := range tictactoe.WinCombos {
		if !slices.Contains(combo[:], cell) {
			continue
		}

		if that.Cell(combo[0]) == mark && that.Cell(combo[1]) == mark && that.Cell(combo[2]) == mark {
			for _, c := range combo {
				if !slices.Contains(cells, c) {
					cells = append(cells, c)
				}
			}
		}
	}

	slices.Sort(cells)

	return cells
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func IsValidMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}
