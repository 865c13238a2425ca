package tictactoe

import (
	"fmt"
	"strings"
)

const rowDivider = "---------------------------------"

// Glyphs are the symbols used to draw marks and empty cells.
type Glyphs struct {
	X     string
	O     string
	Empty string
}

var DefaultGlyphs = Glyphs{X: "X", O: "O", Empty: " "}

// Symbol returns the glyph for mark.
func (that Glyphs) Symbol(mark Mark) string {
	switch mark {
	case MarkX:
		return that.X
	case MarkO:
		return that.O
	default:
		return that.Empty
	}
}

// Render draws the board as nine text rows grouped in three bands of sub-boards,
// followed by a line with the required board and the player to move.
func Render(board *MetaBoard, turn Mark, glyphs Glyphs) string {
	var sb strings.Builder

	for band := 0; band < 3; band++ {
		for row := 0; row < 3; row++ {
			parts := make([]string, 0, 3)
			for col := 0; col < 3; col++ {
				sub := &board.squares[band*3+col]
				parts = append(parts, renderRow(sub, row, glyphs))
			}
			sb.WriteString(strings.Join(parts, " | "))
			sb.WriteByte('\n')
		}
		sb.WriteString(rowDivider)
		sb.WriteByte('\n')
	}

	required := "free"
	if index, ok := board.RequiredIndex(); ok {
		required = index.String()
	}

	fmt.Fprintf(&sb, "Required board: %s | Turn: %s\n", required, glyphs.Symbol(turn))

	return sb.String()
}

func renderRow(sub *SubBoard, row int, glyphs Glyphs) string {
	var sb strings.Builder

	for col := 0; col < 3; col++ {
		mark, _ := sub.cells[row*3+col].Owner()
		sb.WriteString("[" + glyphs.Symbol(mark) + "]")
	}

	return sb.String()
}
