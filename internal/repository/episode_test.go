package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/game"
	"github.com/rocketscienceinc/tictactoe-gym/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	episodeRepo := NewEpisodeRepository(st.Storage)

	// Given: a snapshot of a fresh episode
	episode := entity.NewEpisode("ep-123", game.New(game.DefaultSize))

	// When: CreateOrUpdate is called
	err := episodeRepo.CreateOrUpdate(ctx, episode)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestEpisodeRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		episodeRepo := NewEpisodeRepository(st.Storage)

		// Given: a stored mid-game episode
		state := game.New(game.DefaultSize)
		_, err := state.Step(0)
		require.NoError(t, err)
		_, err = state.Step(4)
		require.NoError(t, err)

		episode := entity.NewEpisode("ep-123", state)
		require.NoError(t, episodeRepo.CreateOrUpdate(ctx, episode))

		// When: GetByID is called with the existing id
		retrieved, err := episodeRepo.GetByID(ctx, episode.ID)

		// Then: the retrieved episode matches the saved one
		require.NoError(t, err)
		assert.Equal(t, episode.ID, retrieved.ID)
		assert.Equal(t, episode.Board, retrieved.Board)
		assert.Equal(t, episode.History, retrieved.History)
		assert.Equal(t, episode.Status, retrieved.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		episodeRepo := NewEpisodeRepository(st.Storage)

		// When: GetByID is called with a non-existent id
		retrieved, err := episodeRepo.GetByID(ctx, "no-such-episode")

		// Then: an ErrEpisodeNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrEpisodeNotFound, err)
		assert.Empty(t, retrieved.ID)
	})
}

func TestEpisodeRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	episodeRepo := NewEpisodeRepository(st.Storage)

	// Given: a stored episode
	episode := entity.NewEpisode("ep-123", game.New(game.DefaultSize))
	require.NoError(t, episodeRepo.CreateOrUpdate(ctx, episode))

	// When: DeleteByID is called
	err := episodeRepo.DeleteByID(ctx, episode.ID)
	require.NoError(t, err)

	// Then: the episode is gone
	_, err = episodeRepo.GetByID(ctx, episode.ID)
	assert.Equal(t, ErrEpisodeNotFound, err)
}
