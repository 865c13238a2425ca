package entity

import (
	"testing"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// X wins boards 0, 2 and 1 on the last move.
var topRowWin = [][2]int{
	{0, 7}, {7, 2}, {2, 7}, {7, 0}, {0, 4}, {4, 0}, {0, 1}, {1, 2}, {2, 4},
	{4, 2}, {2, 1}, {1, 1}, {1, 3}, {3, 1}, {1, 6}, {6, 1}, {1, 0},
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123")

	// Then: X moves first on an empty board
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, tictactoe.MarkX, game.Turn)
	assert.Equal(t, tictactoe.StatusInProgress, game.Status())
	assert.False(t, game.IsFinished())
	assert.NoError(t, game.ConfirmOngoingState())
	assert.Empty(t, game.Result(tictactoe.DefaultGlyphs))
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: X makes a valid turn
		err := game.MakeTurn(tictactoe.MarkX, 0, 4)
		require.NoError(t, err)

		// Then: the turn passes to O
		assert.Equal(t, tictactoe.MarkO, game.Turn)

		index, required := game.Board.RequiredIndex()
		assert.True(t, required)
		assert.Equal(t, 4, index.Value())
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's X's turn
		game := NewGame("123")
		before := *game

		// When: O tries to make a move
		err := game.MakeTurn(tictactoe.MarkO, 0, 0)

		// Then: ErrNotYourTurn is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on Invalid Index", func(t *testing.T) {
		game := NewGame("123")
		before := *game

		err := game.MakeTurn(tictactoe.MarkX, 9, 0)
		require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "outer board")

		err = game.MakeTurn(tictactoe.MarkX, 0, -1)
		require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "inner cell")

		assert.Equal(t, before, *game)
	})

	t.Run("Error on Wrong Board keeps the turn", func(t *testing.T) {
		// Given: O has been sent to board 4
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0, 4))
		before := *game

		// When: O plays in board 1
		err := game.MakeTurn(tictactoe.MarkO, 1, 0)

		// Then: the move fails and it's still O's turn
		require.ErrorIs(t, err, apperror.ErrWrongBoard)
		assert.Equal(t, before, *game)
		assert.Equal(t, tictactoe.MarkO, game.Turn)
	})

	t.Run("Winner", func(t *testing.T) {
		// Given: a game played to X's top-row win
		game := NewGame("123")
		for _, m := range topRowWin {
			require.NoError(t, game.MakeTurn(game.Turn, m[0], m[1]))
		}

		// Then: the game is finished and reports the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, "Winner: X", game.Result(tictactoe.DefaultGlyphs))
		require.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)

		// And: further turns are rejected
		err := game.MakeTurn(game.Turn, 5, 5)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Render(t *testing.T) {
	game := NewGame("123")
	require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0, 4))

	out := game.Render(tictactoe.DefaultGlyphs)

	assert.Contains(t, out, "[ ][X][ ] | [ ][ ][ ] | [ ][ ][ ]")
	assert.Contains(t, out, "Required board: 4 | Turn: O")
}
