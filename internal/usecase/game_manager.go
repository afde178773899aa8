package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type renderer interface {
	RenderMark(cell int, mark string)
	HighlightLine(cells []int)
	GameOver(game *entity.Game, score entity.Score)
}

type evaluator interface {
	EvaluateMove(board *tictactoe.Board, self, opponent *tictactoe.Combatant) int
}

// GameManager runs one human against the computer, a game at a time, and keeps the score.
// It owns the live board and both combatants.
type GameManager struct {
	logger    *slog.Logger
	evaluator evaluator
	renderer  renderer

	game     *entity.Game
	board    *tictactoe.Board
	player   *tictactoe.Combatant
	computer *tictactoe.Combatant
	score    entity.Score
}

func NewGameManager(logger *slog.Logger, evaluator evaluator, renderer renderer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		evaluator: evaluator,
		renderer:  renderer,
	}
}

// NewGame - drops any game in progress and starts a new one. X always moves first,
// so a computer playing X opens right away.
func (that *GameManager) NewGame(ctx context.Context, playerMark string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if !entity.IsValidMark(playerMark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, playerMark)
	}

	game := entity.NewGame(pkg.GenerateGameID(), playerMark)

	that.game = game
	that.board = tictactoe.NewBoard()
	that.player = tictactoe.NewCombatant(game.PlayerMark)
	that.computer = tictactoe.NewCombatant(game.ComputerMark)

	game.Status = entity.StatusOngoing

	that.logger.Info("game started", "method", "NewGame", "gameID", game.ID, "player", game.PlayerMark)

	if game.ComputerMark == entity.PlayerX {
		if err := that.computerTurn(); err != nil {
			return nil, fmt.Errorf("computer failed to make first turn: %w", err)
		}
	}

	return game, nil
}

// MakeTurn - plays the human move on cell and, unless that ended the game, the computer's reply.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	if err := that.game.ConfirmOngoingState(); err != nil {
		return that.game, err
	}

	if err := that.play(that.player, that.computer, cell); err != nil {
		return that.game, fmt.Errorf("failed make turn: %w", err)
	}

	if that.game.IsFinished() {
		return that.game, nil
	}

	if err := that.computerTurn(); err != nil {
		return that.game, fmt.Errorf("computer failed to make turn: %w", err)
	}

	return that.game, nil
}

// Game returns the current game, or nil before the first one starts.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) Score() entity.Score {
	return that.score
}

func (that *GameManager) computerTurn() error {
	cell := that.evaluator.EvaluateMove(that.board, that.computer, that.player)

	return that.play(that.computer, that.player, cell)
}

// play checks the move against the rendered board before the engine sees it.
func (that *GameManager) play(self, opponent *tictactoe.Combatant, cell int) error {
	if err := that.game.MakeTurn(self.Mark, cell); err != nil {
		return err
	}

	result := self.ApplyMove(that.board, cell, opponent)
	that.renderer.RenderMark(cell, self.Mark)

	switch result.Outcome {
	case tictactoe.OutcomeWin:
		line := that.game.CompletedLines(cell)
		that.finish(result.Winner.Mark, line)
		that.renderer.HighlightLine(line)
	case tictactoe.OutcomeDraw:
		that.finish(entity.PlayerTie, nil)
	case tictactoe.OutcomeNone:
		return nil
	}

	that.renderer.GameOver(that.game, that.score)

	return nil
}

func (that *GameManager) finish(winner string, line []int) {
	that.game.Finish(winner, line)
	that.score.Record(that.game)

	that.logger.Info("game finished",
		"method", "finish",
		"gameID", that.game.ID,
		"winner", winner,
		"score", that.score,
	)
}
