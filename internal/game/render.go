package game

import "strings"

const (
	markPlayerOne = "X"
	markPlayerTwo = "O"
	markEmpty     = "."
)

// Render - returns a textual view of the grid, one row per line with a
// dashed separator between rows. Pure function of the current grid.
func (that *State) Render() string {
	var builder strings.Builder

	separator := strings.Repeat("-", 4*that.size-3)

	for row := 0; row < that.size; row++ {
		if row > 0 {
			builder.WriteString(separator)
			builder.WriteString("\n")
		}

		cells := make([]string, that.size)
		for col := 0; col < that.size; col++ {
			switch that.board[row*that.size+col] {
			case PlayerOne:
				cells[col] = markPlayerOne
			case PlayerTwo:
				cells[col] = markPlayerTwo
			default:
				cells[col] = markEmpty
			}
		}

		builder.WriteString(strings.Join(cells, " | "))
		builder.WriteString("\n")
	}

	return builder.String()
}
