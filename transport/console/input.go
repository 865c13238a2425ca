package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// parseMove reads "<outer> <inner>". Range checks are left to the board.
func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want two numbers, got %d", apperror.ErrInvalidInput, len(fields))
	}

	outer, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: outer %q", apperror.ErrInvalidInput, fields[0])
	}

	inner, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: inner %q", apperror.ErrInvalidInput, fields[1])
	}

	return outer, inner, nil
}
