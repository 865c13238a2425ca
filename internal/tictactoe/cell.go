package tictactoe

// Cell is a write-once position of a SubBoard.
type Cell struct {
	mark Mark
}

// Owner returns the mark occupying the cell, if any.
func (that Cell) Owner() (Mark, bool) {
	return that.mark, that.mark != 0
}

func (that Cell) IsEmpty() bool {
	return that.mark == 0
}

// Settled - an occupied cell counts toward a full board.
func (that Cell) Settled() bool {
	return !that.IsEmpty()
}
