package tictactoe

// Mark is one of the two player symbols. The zero Mark belongs to nobody.
type Mark uint8

const (
	MarkX Mark = iota + 1
	MarkO
)

// Flip returns the opposing mark. A mark that is not a player stays as it is.
func (that Mark) Flip() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return that
	}
}

// IsValid reports whether the mark belongs to a player.
func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}
