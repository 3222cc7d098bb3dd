package frame

// Kind is the variant of a box tree node.
type Kind uint8

// Node kinds. The set is closed.
const (
	NoKind Kind = iota // unset or error condition
	ViewportKind
	BlockKind
	InlineKind
	TextKind
	BitMapKind
)

func (k Kind) String() string {
	switch k {
	case ViewportKind:
		return "Viewport"
	case BlockKind:
		return "BlockBox"
	case InlineKind:
		return "InlineBox"
	case TextKind:
		return "TextBox"
	case BitMapKind:
		return "BitMapBox"
	}
	return "NoKind"
}

// IsContainer is true for kinds which may have children.
func (k Kind) IsContainer() bool {
	return k == ViewportKind || k == BlockKind || k == InlineKind
}

// Symbol returns a Unicode symbol for a kind.
func (k Kind) Symbol() string {
	switch k {
	case ViewportKind:
		return "▧"
	case BlockKind:
		return "▩"
	case InlineKind:
		return "►"
	case TextKind:
		return "≣"
	case BitMapKind:
		return "▦"
	}
	return "?"
}
