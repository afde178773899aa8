package tictactoe

import (
	"log/slog"
	"slices"
)

// rule names the step of the cascade that produced a move.
type rule string

const (
	ruleOpen      rule = "open"
	ruleBook      rule = "opening-book"
	ruleWin       rule = "win"
	ruleBlock     rule = "block"
	ruleFork      rule = "fork"
	ruleDenyFork  rule = "deny-fork"
	ruleForceDraw rule = "force-draw"
	ruleSimulate  rule = "simulate"
)

// Evaluator picks moves for the computer. Every random tie-break goes through its chooser.
type Evaluator struct {
	logger  *slog.Logger
	chooser Chooser
}

func NewEvaluator(logger *slog.Logger, chooser Chooser) *Evaluator {
	return &Evaluator{
		logger:  logger.With("component", "evaluator"),
		chooser: chooser,
	}
}

// EvaluateMove - returns the cell self should play next.
func (that *Evaluator) EvaluateMove(board *Board, self, opponent *Combatant) int {
	cell, reason := that.evaluate(board, self, opponent)

	that.logger.Debug("move evaluated",
		"method", "EvaluateMove",
		"mark", self.Mark,
		"cell", cell,
		"rule", string(reason),
		"moves", board.Moves(),
	)

	return cell
}

func (that *Evaluator) evaluate(board *Board, self, opponent *Combatant) (int, rule) {
	switch board.Moves() {
	case 0:
		return Pick(that.chooser, board.free), ruleOpen
	case 1:
		if board.FirstMove() == Center {
			return Pick(that.chooser, corners), ruleBook
		}
		return Center, ruleBook
	}

	if wins := finishingCells(self.fragments); len(wins) > 0 {
		return Pick(that.chooser, wins), ruleWin
	}

	if blocks := finishingCells(opponent.fragments); len(blocks) > 0 {
		return Pick(that.chooser, blocks), ruleBlock
	}

	if forks := CommonOccurrences(self.fragments); len(forks) > 0 {
		return Pick(that.chooser, forks), ruleFork
	}

	opponentForks := CommonOccurrences(opponent.fragments)
	if len(opponentForks) == 1 {
		return opponentForks[0], ruleDenyFork
	}

	if len(opponentForks) > 1 {
		// with several forks open to the opponent, threaten a line whose reply cell is not one of them
		if safe := safeThreats(self.fragments, opponentForks); len(safe) > 0 {
			return Pick(that.chooser, safe), ruleForceDraw
		}
	}

	return that.bestSimulated(board, self, opponent), ruleSimulate
}

func (that *Evaluator) bestSimulated(board *Board, self, opponent *Combatant) int {
	var best []int
	maxScore := ScoreLoss - 1

	for _, cell := range board.free {
		score := that.SimulateMove(board, cell, self, opponent)
		switch {
		case score > maxScore:
			best = []int{cell}
			maxScore = score
		case score == maxScore:
			best = append(best, cell)
		}
	}

	return Pick(that.chooser, best)
}

// CommonOccurrences returns the cells found in more than one fragment, in the order the repeats are seen.
func CommonOccurrences(fragments [][]int) []int {
	seen := make(map[int]bool)
	var common []int

	for _, fragment := range fragments {
		for _, cell := range fragment {
			if !seen[cell] {
				seen[cell] = true
				continue
			}

			if !slices.Contains(common, cell) {
				common = append(common, cell)
			}
		}
	}

	return common
}

// finishingCells returns the last cell of every fragment one move from completion.
func finishingCells(fragments [][]int) []int {
	var cells []int

	for _, fragment := range fragments {
		if len(fragment) == 1 && !slices.Contains(cells, fragment[0]) {
			cells = append(cells, fragment[0])
		}
	}

	return cells
}

func safeThreats(fragments [][]int, opponentForks []int) []int {
	var safe []int

	for _, fragment := range fragments {
		if len(fragment) != 2 {
			continue
		}

		for i, cell := range fragment {
			partner := fragment[1-i]
			if !slices.Contains(opponentForks, partner) && !slices.Contains(safe, cell) {
				safe = append(safe, cell)
			}
		}
	}

	return safe
}
