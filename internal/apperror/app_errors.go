package apperror

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrGameNotOver    = errors.New("game is not over yet")
	ErrBothPlayersWin = errors.New("both players have a winning line")
)
