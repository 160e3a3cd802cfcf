package game

// Info carries the auxiliary context returned alongside observations.
type Info struct {
	History      []int `json:"history"`
	Player       int   `json:"player"`
	Winner       int   `json:"winner"`
	LegalActions []int `json:"legal_actions"`
}

// StepResult is the outcome of one applied move. Truncated is always false:
// the game has no externally imposed step limit.
type StepResult struct {
	Board     [][]int `json:"board"`
	Winner    int     `json:"winner"`
	Terminal  bool    `json:"terminal"`
	Truncated bool    `json:"truncated"`
	Info      Info    `json:"info"`
}
