package tictactoe

import "fmt"

type state uint8

const (
	stateInProgress state = iota
	stateWon
	stateDrawn
)

// BoardStatus is the terminal state of a board at either level.
// Once it leaves InProgress it never changes again.
type BoardStatus struct {
	state  state
	winner Mark
}

var (
	StatusInProgress = BoardStatus{state: stateInProgress}
	StatusDrawn      = BoardStatus{state: stateDrawn}
)

// Won returns the status of a board won by mark.
func Won(mark Mark) BoardStatus {
	return BoardStatus{state: stateWon, winner: mark}
}

func (that BoardStatus) IsInProgress() bool {
	return that.state == stateInProgress
}

func (that BoardStatus) IsDrawn() bool {
	return that.state == stateDrawn
}

func (that BoardStatus) IsTerminal() bool {
	return that.state != stateInProgress
}

// Winner returns the mark that won the board.
func (that BoardStatus) Winner() (Mark, bool) {
	if that.state != stateWon {
		return 0, false
	}
	return that.winner, true
}

// Owner lets a won board take part in win lines one level up.
func (that BoardStatus) Owner() (Mark, bool) {
	return that.Winner()
}

// Settled - drawn and won boards both count toward a full board.
func (that BoardStatus) Settled() bool {
	return that.IsTerminal()
}

func (that BoardStatus) String() string {
	switch that.state {
	case stateWon:
		return fmt.Sprintf("won by %s", that.winner)
	case stateDrawn:
		return "draw"
	default:
		return "in progress"
	}
}
