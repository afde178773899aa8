package tictactoe

// Rollout scores, from the point of view of the combatant that simulates.
const (
	ScoreWin  = 1
	ScoreDraw = 0
	ScoreLoss = -1
)

// SimulateMove - plays cell for self on a private copy of the game, then lets both sides
// answer each other with the evaluator until the game ends. The live board and combatants are not touched.
func (that *Evaluator) SimulateMove(board *Board, cell int, self, opponent *Combatant) int {
	scratch := board.Clone()
	player := self.Clone()
	rival := opponent.Clone()

	current, waiting := player, rival
	result := current.ApplyMove(scratch, cell, waiting)

	for !result.IsTerminal() {
		current, waiting = waiting, current
		move, _ := that.evaluate(scratch, current, waiting)
		result = current.ApplyMove(scratch, move, waiting)
	}

	switch {
	case result.Outcome == OutcomeDraw:
		return ScoreDraw
	case result.Winner == player:
		return ScoreWin
	default:
		return ScoreLoss
	}
}
