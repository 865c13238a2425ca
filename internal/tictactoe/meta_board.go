package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"

// MetaBoard is the whole game: nine sub-boards, the outer status and the board
// the next move is sent to. The zero value is a new game.
type MetaBoard struct {
	squares     [boardSize]SubBoard
	status      BoardStatus
	required    Index
	hasRequired bool
}

func NewMetaBoard() *MetaBoard {
	return &MetaBoard{}
}

func (that *MetaBoard) State() BoardStatus {
	return that.status
}

// SubBoard returns a copy of the sub-board at index.
func (that *MetaBoard) SubBoard(index Index) SubBoard {
	return that.squares[index.value]
}

// RequiredIndex returns the sub-board the next move must target.
// false means any sub-board still in progress may be played.
func (that *MetaBoard) RequiredIndex() (Index, bool) {
	return that.required, that.hasRequired
}

// DoMove plays mark into cell inner of sub-board outer.
// A rejected move leaves the board exactly as it was.
func (that *MetaBoard) DoMove(mark Mark, outer, inner Index) error {
	if that.status.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !mark.IsValid() {
		return apperror.ErrInvalidMark
	}

	if that.hasRequired && that.required != outer {
		return &WrongBoardError{Required: that.required}
	}

	if err := that.squares[outer.value].DoMove(mark, inner); err != nil {
		return &BoardError{Outer: outer, Err: err}
	}

	that.updateState()

	// the opponent is sent to the board matching the cell just played, unless it is already decided
	that.required, that.hasRequired = Index{}, false
	if that.squares[inner.value].State().IsInProgress() {
		that.required, that.hasRequired = inner, true
	}

	return nil
}

func (that *MetaBoard) updateState() {
	if !that.status.IsInProgress() {
		return
	}

	var statuses [boardSize]BoardStatus
	for i := range that.squares {
		statuses[i] = that.squares[i].State()
	}

	that.status = evaluate(&statuses)
}
