package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Render(t *testing.T) {
	t.Run("Renders an empty grid", func(t *testing.T) {
		// Given: a fresh game
		state := New(DefaultSize)

		expected := ". | . | .\n" +
			"---------\n" +
			". | . | .\n" +
			"---------\n" +
			". | . | .\n"

		assert.Equal(t, expected, state.Render())
	})

	t.Run("Renders marks for both players", func(t *testing.T) {
		// Given: PlayerOne on cell 0 and PlayerTwo on cell 4
		state := New(DefaultSize)
		_, err := state.Step(0)
		require.NoError(t, err)
		_, err = state.Step(4)
		require.NoError(t, err)

		expected := "X | . | .\n" +
			"---------\n" +
			". | O | .\n" +
			"---------\n" +
			". | . | .\n"

		assert.Equal(t, expected, state.Render())
	})

	t.Run("Rendering has no side effects", func(t *testing.T) {
		// Given: a mid-game state
		state := New(DefaultSize)
		_, err := state.Step(0)
		require.NoError(t, err)

		// When: rendering twice
		first := state.Render()
		second := state.Render()

		// Then: the output is identical and the state unchanged
		assert.Equal(t, first, second)
		assert.Equal(t, []int{0}, state.History())
	})
}
