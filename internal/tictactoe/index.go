package tictactoe

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

const boardSize = 9

// Index is a position in [0, 9), row-major. It can only be built by NewIndex,
// so board code indexes arrays with it directly.
type Index struct {
	value uint8
}

func NewIndex(raw int) (Index, error) {
	if raw < 0 || raw >= boardSize {
		return Index{}, fmt.Errorf("%w: index %d is not in range (0-%d)", apperror.ErrIndexOutOfRange, raw, boardSize-1)
	}

	return Index{value: uint8(raw)}, nil
}

func (that Index) Value() int {
	return int(that.value)
}

func (that Index) String() string {
	return strconv.Itoa(int(that.value))
}
