package env

// Discrete declares an action space of integers in [0, N).
type Discrete struct {
	N int `json:"n"`
}

// Contains - reports whether the action is inside the space.
func (that Discrete) Contains(action int) bool {
	return action >= 0 && action < that.N
}

// Box declares a bounded integer grid observation space.
type Box struct {
	Low  int `json:"low"`
	High int `json:"high"`
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Contains - reports whether the observation has the declared shape and
// every cell is inside the declared bounds.
func (that Box) Contains(observation [][]int) bool {
	if len(observation) != that.Rows {
		return false
	}

	for _, row := range observation {
		if len(row) != that.Cols {
			return false
		}

		for _, cell := range row {
			if cell < that.Low || cell > that.High {
				return false
			}
		}
	}

	return true
}
