package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
)

// Cell marks double as outcomes: the winner of a finished game is either a
// player's mark or Draw.
const (
	Empty     = 0
	PlayerOne = 1
	PlayerTwo = -1
	Draw      = 0
)

// DefaultSize is the classic 3x3 grid.
const DefaultSize = 3

// State is the complete state of one game: the grid, the player to move,
// the move history, and the outcome once the game is over. A State is meant
// for exclusive use by one caller; independent episodes need independent
// instances (see Clone).
type State struct {
	size     int
	board    []int // row-major, cell action = row*size + col
	lines    [][]int
	turn     int
	history  []int
	terminal bool
	winner   int
}

// New - creates a game state for a size x size grid. PlayerOne moves first.
func New(size int) *State {
	that := &State{
		size:  size,
		lines: winLines(size),
	}

	that.Reset()

	return that
}

// Reset - returns the state to an empty grid with PlayerOne to move.
func (that *State) Reset() {
	that.board = make([]int, that.size*that.size)
	that.history = make([]int, 0, that.size*that.size)
	that.turn = PlayerOne
	that.terminal = false
	that.winner = Draw
}

// Size - returns the grid size n.
func (that *State) Size() int {
	return that.size
}

// NumActions - returns the number of cells, n*n. Valid actions are flat
// row-major indices in [0, NumActions).
func (that *State) NumActions() int {
	return len(that.board)
}

// Turn - returns the player to move, PlayerOne or PlayerTwo.
func (that *State) Turn() int {
	return that.turn
}

// Terminal - reports whether the game is over.
func (that *State) Terminal() bool {
	return that.terminal
}

// Winner - returns the winning player, or Draw. Meaningful only once the
// game is terminal.
func (that *State) Winner() int {
	return that.winner
}

// History - returns a copy of the actions taken so far, in play order.
func (that *State) History() []int {
	return append([]int(nil), that.history...)
}

// LegalActions - returns the actions targeting empty cells, ascending.
func (that *State) LegalActions() []int {
	actions := make([]int, 0, len(that.board))

	for action, cell := range that.board {
		if cell == Empty {
			actions = append(actions, action)
		}
	}

	return actions
}

// IsValidAction - reports whether the action is in range, targets an empty
// cell, and the game still accepts moves.
func (that *State) IsValidAction(action int) bool {
	if that.terminal {
		return false
	}

	return action >= 0 && action < len(that.board) && that.board[action] == Empty
}

// Step - applies the action for the player to move: marks the cell, appends
// to history, toggles the turn, then re-evaluates termination. Rejection is
// atomic: on an invalid action nothing is mutated.
func (that *State) Step(action int) (*StepResult, error) {
	if !that.IsValidAction(action) {
		return nil, fmt.Errorf("%w: action %d", apperror.ErrInvalidAction, action)
	}

	that.board[action] = that.turn
	that.history = append(that.history, action)
	that.turn = -that.turn

	if winner, won := that.checkLines(); won {
		that.terminal = true
		that.winner = winner
	} else if len(that.history) == len(that.board) {
		that.terminal = true
		that.winner = Draw
	}

	return &StepResult{
		Board:     that.Grid(),
		Winner:    that.winner,
		Terminal:  that.terminal,
		Truncated: false,
		Info:      that.Info(),
	}, nil
}

// Result - returns the terminal result from the given player's perspective:
// +1 for a win, -1 for a loss, 0 for a draw. The player must be PlayerOne
// or PlayerTwo.
func (that *State) Result(player int) (int, error) {
	if !that.terminal {
		return 0, apperror.ErrGameNotOver
	}

	return that.winner * player, nil
}

// Grid - returns a copy of the board as a size x size matrix.
func (that *State) Grid() [][]int {
	grid := make([][]int, that.size)

	for row := range grid {
		grid[row] = make([]int, that.size)
		copy(grid[row], that.board[row*that.size:(row+1)*that.size])
	}

	return grid
}

// Observation - returns the grid for the requesting player. Marks are
// absolute (PlayerOne is always 1, PlayerTwo always -1), so both players
// see the same grid.
func (that *State) Observation(player int) [][]int {
	return that.Grid()
}

// Info - reports the move history, the player to move, the winner, and the
// legal actions.
func (that *State) Info() Info {
	return Info{
		History:      that.History(),
		Player:       that.turn,
		Winner:       that.winner,
		LegalActions: that.LegalActions(),
	}
}

// Clone - returns a deep copy sharing no mutable storage with the source.
// Win lines are immutable once built and safe to share.
func (that *State) Clone() *State {
	return &State{
		size:     that.size,
		board:    append([]int(nil), that.board...),
		lines:    that.lines,
		turn:     that.turn,
		history:  append([]int(nil), that.history...),
		terminal: that.terminal,
		winner:   that.winner,
	}
}
