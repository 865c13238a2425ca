package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_Flip(t *testing.T) {
	for _, mark := range []Mark{MarkX, MarkO} {
		assert.NotEqual(t, mark, mark.Flip())
		assert.Equal(t, mark, mark.Flip().Flip())
	}

	assert.Equal(t, MarkO, MarkX.Flip())
	assert.Equal(t, MarkX, MarkO.Flip())

	// the empty mark is not a player and has no opponent
	assert.Equal(t, Mark(0), Mark(0).Flip())
	assert.Equal(t, Mark(0), Mark(0).Flip().Flip())
}

func TestMark_IsValid(t *testing.T) {
	assert.True(t, MarkX.IsValid())
	assert.True(t, MarkO.IsValid())
	assert.False(t, Mark(0).IsValid())
	assert.False(t, Mark(3).IsValid())
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Empty(t, Mark(0).String())
}
