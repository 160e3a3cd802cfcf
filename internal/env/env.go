package env

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/game"
)

type episodeStore interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	DeleteByID(ctx context.Context, id string) error
}

// Transition is what one environment step hands back to the agent.
type Transition struct {
	Observation [][]int   `json:"observation"`
	Reward      int       `json:"reward"`
	Terminated  bool      `json:"terminated"`
	Truncated   bool      `json:"truncated"`
	Info        game.Info `json:"info"`
}

// Environment wraps one game state behind the step/reset/render interface
// agents consume. The store is optional; when present, the current episode
// is snapshotted after every step and never outlives its own reset.
type Environment struct {
	ActionSpace      Discrete
	ObservationSpace Box

	logger *slog.Logger
	state  *game.State
	store  episodeStore
	id     string
}

// New - creates an environment over a size x size game.
func New(logger *slog.Logger, size int, store episodeStore) *Environment {
	state := game.New(size)

	return &Environment{
		ActionSpace:      Discrete{N: state.NumActions()},
		ObservationSpace: Box{Low: game.PlayerTwo, High: game.PlayerOne, Rows: size, Cols: size},
		logger:           logger.With("component", "env"),
		state:            state,
		store:            store,
		id:               uuid.NewString(),
	}
}

// ID - returns the current episode id.
func (that *Environment) ID() string {
	return that.id
}

// Step - applies the action for the player to move. The reward is from that
// mover's perspective: +1 win, -1 loss, 0 draw or game still running.
func (that *Environment) Step(ctx context.Context, action int) (*Transition, error) {
	mover := that.state.Turn()

	result, err := that.state.Step(action)
	if err != nil {
		return nil, fmt.Errorf("failed to apply action: %w", err)
	}

	reward := 0
	if result.Terminal {
		reward, err = that.state.Result(mover)
		if err != nil {
			return nil, fmt.Errorf("failed to get result: %w", err)
		}
	}

	that.record(ctx)

	return &Transition{
		Observation: result.Board,
		Reward:      reward,
		Terminated:  result.Terminal,
		Truncated:   result.Truncated,
		Info:        result.Info,
	}, nil
}

// Reset - discards the recorded episode, starts a fresh one under a new id,
// and returns the initial observation.
func (that *Environment) Reset(ctx context.Context) ([][]int, game.Info) {
	if that.store != nil {
		if err := that.store.DeleteByID(ctx, that.id); err != nil {
			that.logger.Error("could not delete recorded episode", "error", err, "episode", that.id)
		}
	}

	that.state.Reset()
	that.id = uuid.NewString()
	that.record(ctx)

	return that.state.Observation(game.PlayerOne), that.state.Info()
}

// Render - writes the current grid to the writer.
func (that *Environment) Render(w io.Writer) error {
	if _, err := io.WriteString(w, that.state.Render()); err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}

	return nil
}

// record - snapshots the current episode. Recording failures are logged,
// never surfaced: the game itself stays playable without the store.
func (that *Environment) record(ctx context.Context) {
	if that.store == nil {
		return
	}

	episode := entity.NewEpisode(that.id, that.state)
	if err := that.store.CreateOrUpdate(ctx, episode); err != nil {
		that.logger.Error("could not record episode", "error", err, "episode", that.id)
	}
}
