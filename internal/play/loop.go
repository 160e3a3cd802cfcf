package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	"github.com/rocketscienceinc/tictactoe-gym/internal/game"
)

var ErrInputClosed = errors.New("input closed")

// Loop plays episodes interactively on a terminal-like reader/writer pair.
// Both players share the same input, taking turns.
type Loop struct {
	logger      *slog.Logger
	environment *env.Environment
	in          *bufio.Scanner
	out         io.Writer
}

func NewLoop(logger *slog.Logger, environment *env.Environment, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		logger:      logger.With("component", "play"),
		environment: environment,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run - plays one episode from reset to terminal, prompting for an action
// each turn. Bad input and illegal actions re-prompt without touching the
// game. Returns the winner value, game.Draw for a draw.
func (that *Loop) Run(ctx context.Context) (int, error) {
	_, info := that.environment.Reset(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return game.Draw, fmt.Errorf("play loop canceled: %w", err)
		}

		fmt.Fprintf(that.out, "Select action (%s): ", joinActions(info.LegalActions))

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return game.Draw, fmt.Errorf("failed to read action: %w", err)
			}
			return game.Draw, ErrInputClosed
		}

		action, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
		if err != nil {
			fmt.Fprintln(that.out, "Please enter a number")
			continue
		}

		transition, err := that.environment.Step(ctx, action)
		if errors.Is(err, apperror.ErrInvalidAction) {
			fmt.Fprintln(that.out, "Invalid action, please try again")
			continue
		}
		if err != nil {
			return game.Draw, fmt.Errorf("failed to step environment: %w", err)
		}

		if err = that.environment.Render(that.out); err != nil {
			return game.Draw, err
		}

		info = transition.Info

		if transition.Terminated {
			that.announce(transition.Info.Winner)
			return transition.Info.Winner, nil
		}
	}
}

func (that *Loop) announce(winner int) {
	switch winner {
	case game.PlayerOne:
		fmt.Fprintln(that.out, "Winner is player X")
	case game.PlayerTwo:
		fmt.Fprintln(that.out, "Winner is player O")
	default:
		fmt.Fprintln(that.out, "It's a draw")
	}
}

func joinActions(actions []int) string {
	parts := make([]string, len(actions))
	for i, action := range actions {
		parts[i] = strconv.Itoa(action)
	}

	return strings.Join(parts, ", ")
}
