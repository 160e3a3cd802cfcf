package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-gym/internal/config"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	"github.com/rocketscienceinc/tictactoe-gym/internal/play"
	"github.com/rocketscienceinc/tictactoe-gym/internal/repository"
	"github.com/rocketscienceinc/tictactoe-gym/internal/repository/storage"
)

// episodeStore is the slice of the repository the environment records
// through.
type episodeStore interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	DeleteByID(ctx context.Context, id string) error
}

// RunApp - runs the application: builds the environment from config and
// plays episodes on the terminal until the input closes or a signal
// arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	store, closeStore, err := buildEpisodeStore(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	environment, err := env.Make(conf.Environment, logger, store)
	if err != nil {
		return fmt.Errorf("could not build environment: %w", err)
	}

	loop := play.NewLoop(logger, environment, os.Stdin, os.Stdout)

	errCh := make(chan error, 1)
	go func() {
		for {
			winner, loopErr := loop.Run(ctx)
			if loopErr != nil {
				errCh <- loopErr
				return
			}

			log.Info("Episode finished", "winner", winner, "episode", environment.ID())
		}
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, play.ErrInputClosed) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("play loop error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildEpisodeStore - wires the Redis-backed episode recorder when enabled,
// a no-op store otherwise.
func buildEpisodeStore(ctx context.Context, logger *slog.Logger, conf *config.Config) (episodeStore, func(), error) {
	log := logger.With("component", "app")

	if !conf.RecordEpisodes {
		return env.NopStore{}, func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStore := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewEpisodeRepository(redisStorage.Connection), closeStore, nil
}
