package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// WrongBoardError - the move ignored the sub-board the player was sent to.
type WrongBoardError struct {
	Required Index
}

func (that *WrongBoardError) Error() string {
	return fmt.Sprintf("move must be in board %d", that.Required.Value())
}

func (that *WrongBoardError) Unwrap() error {
	return apperror.ErrWrongBoard
}

// BoardError locates a sub-board failure on the outer board.
type BoardError struct {
	Outer Index
	Err   error
}

func (that *BoardError) Error() string {
	return fmt.Sprintf("board %d: %v", that.Outer.Value(), that.Err)
}

func (that *BoardError) Unwrap() error {
	return that.Err
}
