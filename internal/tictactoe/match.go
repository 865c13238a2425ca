package tictactoe

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// square is anything a win line can be drawn through: a Cell inside a SubBoard
// or a SubBoard status inside the MetaBoard.
type square interface {
	comparable
	Owner() (Mark, bool)
	Settled() bool
}

// checkMatch returns the mark shared by all three squares. An unowned square never matches.
func checkMatch[T square](a, b, c T) (Mark, bool) {
	mark, ok := a.Owner()
	if !ok || a != b || b != c {
		return 0, false
	}

	return mark, true
}

// evaluate computes a board status from scratch. Lines are tested in WinCombos order
// and the first match wins.
func evaluate[T square](squares *[boardSize]T) BoardStatus {
	for _, combo := range WinCombos {
		if mark, ok := checkMatch(squares[combo[0]], squares[combo[1]], squares[combo[2]]); ok {
			return Won(mark)
		}
	}

	// the board is still playable until every square is settled
	for _, sq := range squares {
		if !sq.Settled() {
			return StatusInProgress
		}
	}

	return StatusDrawn
}
