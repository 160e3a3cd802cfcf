package entity

import "github.com/rocketscienceinc/tictactoe-gym/internal/game"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Episode is the recorded snapshot of one game episode. The board is flat,
// row-major, one entry per cell.
type Episode struct {
	ID      string `json:"id"`
	Size    int    `json:"size"`
	Board   []int  `json:"board"`
	History []int  `json:"history"`
	Turn    int    `json:"player_turn"`
	Status  string `json:"status"`
	Winner  int    `json:"winner"`
}

// NewEpisode - snapshots the game state under the given episode id.
func NewEpisode(id string, state *game.State) *Episode {
	status := StatusOngoing
	if state.Terminal() {
		status = StatusFinished
	}

	episode := &Episode{
		ID:      id,
		Size:    state.Size(),
		Board:   make([]int, 0, state.NumActions()),
		History: state.History(),
		Turn:    state.Turn(),
		Status:  status,
		Winner:  state.Winner(),
	}

	for _, row := range state.Grid() {
		episode.Board = append(episode.Board, row...)
	}

	return episode
}

func (that *Episode) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Episode) IsOngoing() bool {
	return that.Status == StatusOngoing
}
