package env

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/game"
)

// TicTacToeV0 is the environment id of the classic 3x3 game.
const TicTacToeV0 = "tictactoe-v0"

var (
	ErrUnknownEnvironment = errors.New("unknown environment id")
	ErrAlreadyRegistered  = errors.New("environment id already registered")
)

// Factory builds a fresh environment instance.
type Factory func(logger *slog.Logger, store episodeStore) *Environment

var (
	registryMu sync.Mutex
	registry   = make(map[string]Factory)
)

// Register - registers a factory under an environment id. Registration is a
// one-time side effect, typically done from a package init.
func Register(id string, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, id)
	}

	registry[id] = factory

	return nil
}

// Make - builds a registered environment by id.
func Make(id string, logger *slog.Logger, store episodeStore) (*Environment, error) {
	registryMu.Lock()
	factory, ok := registry[id]
	registryMu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnvironment, id)
	}

	return factory(logger, store), nil
}

// NopStore - an episode store that records nothing, for callers that play
// without persistence.
type NopStore struct{}

func (NopStore) CreateOrUpdate(_ context.Context, _ *entity.Episode) error { return nil }

func (NopStore) DeleteByID(_ context.Context, _ string) error { return nil }

func init() {
	if err := Register(TicTacToeV0, func(logger *slog.Logger, store episodeStore) *Environment {
		return New(logger, game.DefaultSize, store)
	}); err != nil {
		panic(err)
	}
}
