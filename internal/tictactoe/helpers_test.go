package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type move struct {
	outer, inner int
}

func mustIndex(t *testing.T, raw int) Index {
	t.Helper()

	index, err := NewIndex(raw)
	require.NoError(t, err)

	return index
}

// play applies moves alternately starting with X and returns the mark to move next.
func play(t *testing.T, board *MetaBoard, moves []move) Mark {
	t.Helper()

	mark := MarkX
	for i, m := range moves {
		err := board.DoMove(mark, mustIndex(t, m.outer), mustIndex(t, m.inner))
		require.NoError(t, err, "move %d (%d, %d)", i, m.outer, m.inner)
		mark = mark.Flip()
	}

	return mark
}
