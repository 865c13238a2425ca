package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const (
	ResultDraw         = "Draw"
	resultWinnerPrefix = "Winner: "
)

// Game is one match: the board and the mark whose turn it is.
type Game struct {
	ID    string
	Board tictactoe.MetaBoard
	Turn  tictactoe.Mark
}

func NewGame(id string) *Game {
	return &Game{
		ID:   id,
		Turn: tictactoe.MarkX,
	}
}

// MakeTurn plays mark at the raw coordinates. The turn passes to the opponent only
// when the move is accepted.
func (that *Game) MakeTurn(mark tictactoe.Mark, outer, inner int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	outerIndex, err := tictactoe.NewIndex(outer)
	if err != nil {
		return fmt.Errorf("outer board: %w", err)
	}

	innerIndex, err := tictactoe.NewIndex(inner)
	if err != nil {
		return fmt.Errorf("inner cell: %w", err)
	}

	if err = that.Board.DoMove(mark, outerIndex, innerIndex); err != nil {
		return err //nolint: wrapcheck // already carries the board location
	}

	that.Turn = that.Turn.Flip()

	return nil
}

func (that *Game) Status() tictactoe.BoardStatus {
	return that.Board.State()
}

func (that *Game) IsFinished() bool {
	return that.Status().IsTerminal()
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

// Result - "Winner: <mark>", "Draw", or empty while the game is still going.
func (that *Game) Result(glyphs tictactoe.Glyphs) string {
	status := that.Status()

	if winner, ok := status.Winner(); ok {
		return resultWinnerPrefix + glyphs.Symbol(winner)
	}

	if status.IsDrawn() {
		return ResultDraw
	}

	return ""
}

// Render draws the board with the player to move.
func (that *Game) Render(glyphs tictactoe.Glyphs) string {
	return tictactoe.Render(&that.Board, that.Turn, glyphs)
}
