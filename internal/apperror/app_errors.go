package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrGameNotFound    = errors.New("game not found")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrBoardFinished   = errors.New("board is already finished")
	ErrWrongBoard      = errors.New("move is in the wrong board")
	ErrIndexOutOfRange = errors.New("index is out of range")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidMark     = errors.New("mark is not a player")
)
