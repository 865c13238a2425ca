package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"

// SubBoard is one of the nine inner 3x3 boards. The zero value is an empty board in progress.
type SubBoard struct {
	cells  [boardSize]Cell
	status BoardStatus
}

func NewSubBoard() *SubBoard {
	return &SubBoard{}
}

func (that SubBoard) State() BoardStatus {
	return that.status
}

func (that SubBoard) Cell(index Index) Cell {
	return that.cells[index.value]
}

// DoMove places mark at index. Nothing is written unless the move is accepted.
func (that *SubBoard) DoMove(mark Mark, index Index) error {
	if !mark.IsValid() {
		return apperror.ErrInvalidMark
	}

	if that.status.IsTerminal() {
		return apperror.ErrBoardFinished
	}

	if !that.cells[index.value].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[index.value] = Cell{mark: mark}
	that.updateState()

	return nil
}

func (that *SubBoard) updateState() {
	if that.status.IsInProgress() {
		that.status = evaluate(&that.cells)
	}
}
