package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
)

// winLines - builds the full-grid winning lines for a size x size board:
// one per row, one per column, and the two diagonals. Cells are flat
// row-major indices.
func winLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make([]int, size)
		for col := 0; col < size; col++ {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make([]int, size)
		for row := 0; row < size; row++ {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	mainDiag := make([]int, size)
	antiDiag := make([]int, size)
	for i := 0; i < size; i++ {
		mainDiag[i] = i*size + i
		antiDiag[i] = i*size + (size - 1 - i)
	}

	return append(lines, mainDiag, antiDiag)
}

// lineWinner - returns the mark occupying every cell of the line, or Empty.
func (that *State) lineWinner(line []int) int {
	first := that.board[line[0]]
	if first == Empty {
		return Empty
	}

	for _, cell := range line[1:] {
		if that.board[cell] != first {
			return Empty
		}
	}

	return first
}

// checkLines - scans every winning line and returns the winner, if any.
// Under alternating play at most one player can hold a complete line; a
// board where both do is corrupted beyond recovery, so that case panics.
func (that *State) checkLines() (int, bool) {
	winner := Empty

	for _, line := range that.lines {
		mark := that.lineWinner(line)
		if mark == Empty {
			continue
		}

		if winner != Empty && mark != winner {
			panic(fmt.Errorf("%w: marks %d and %d", apperror.ErrBothPlayersWin, winner, mark))
		}

		winner = mark
	}

	return winner, winner != Empty
}
