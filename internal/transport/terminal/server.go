package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(ctx context.Context, playerMark string) (*entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (*entity.Game, error)
	Game() *entity.Game
	Score() entity.Score
}

// Message is one command line split into an action and its arguments.
type Message struct {
	Action string
	Args   []string
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	renderer *Renderer

	defaultMark string

	handlers map[string]func(ctx context.Context, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, renderer *Renderer, defaultMark string) *Server {
	server := &Server{
		logger:   logger.With("component", "terminal"),
		uGame:    uGame,
		renderer: renderer,

		defaultMark: defaultMark,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleGameTurn
	server.handlers["board"] = server.handleBoard
	server.handlers["score"] = server.handleScore
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Serve - reads commands from in until quit, end of input or ctx is canceled.
func (that *Server) Serve(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Serve")

	// releases the reader when Serve returns on quit
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.renderer.Message("Type \"new X\" or \"new O\" to start, \"help\" for commands.")

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}

			message, ok := parseMessage(line)
			if !ok {
				continue
			}

			if err := that.dispatch(ctx, message); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Error("error processing message", "action", message.Action, "error", err)
			}
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		that.renderer.Message("unknown command %q, type \"help\"", message.Action)
		return nil
	}

	return handler(ctx, message)
}

// parseMessage splits a command line. A bare number is a move.
func parseMessage(line string) (*Message, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	action := strings.ToLower(fields[0])
	if _, err := strconv.Atoi(action); err == nil {
		return &Message{Action: "move", Args: fields}, true
	}

	return &Message{Action: action, Args: fields[1:]}, true
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message) error {
	mark := that.defaultMark
	if len(msg.Args) > 0 {
		mark = strings.ToUpper(msg.Args[0])
	}

	that.renderer.Reset()

	game, err := that.uGame.NewGame(ctx, mark)
	if errors.Is(err, apperror.ErrInvalidMark) {
		that.renderer.Message("mark must be X or O")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.renderer.Message("You are %s", game.PlayerMark)
	that.renderer.PrintBoard()

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) error {
	if len(msg.Args) != 1 {
		that.renderer.Message("usage: move <1-9>")
		return nil
	}

	cell, err := strconv.Atoi(msg.Args[0])
	if err != nil {
		that.renderer.Message("usage: move <1-9>")
		return nil
	}

	game, err := that.uGame.MakeTurn(ctx, cell)
	switch {
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		that.renderer.Message("no game in progress, type \"new\"")
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		that.renderer.Message("game is over, type \"new\" to play again")
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.renderer.Message("cell %d is already taken", cell)
		return nil
	case errors.Is(err, apperror.ErrInvalidCell):
		that.renderer.Message("cell must be between 1 and 9")
		return nil
	case err != nil:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	// a finished game has already been drawn by GameOver
	if !game.IsFinished() {
		that.renderer.PrintBoard()
	}

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ *Message) error {
	if that.uGame.Game() == nil {
		that.renderer.Message("no game in progress, type \"new\"")
		return nil
	}

	that.renderer.PrintBoard()

	return nil
}

func (that *Server) handleScore(_ context.Context, _ *Message) error {
	that.renderer.PrintScore(that.uGame.Score())
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ *Message) error {
	that.renderer.Message(`commands:
  new [X|O]   start a game, X moves first
  move <1-9>  mark a cell (a bare number works too)
  board       show the board
  score       show the score
  quit        leave`)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *Message) error {
	return errQuit
}
