// # internal/parser/types.go
package parser

// SymbolKind is the closed set of type classes the downstream graph cares
// about. Anything the ELF type code does not map onto cleanly lands in
// KindOther.
type SymbolKind int

const (
	KindFunction SymbolKind = iota
	KindObject
	KindOther
)

func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "FUNCTION"
	case KindObject:
		return "OBJECT"
	default:
		return "OTHER"
	}
}

// Binding is the visibility class of a symbol. Only global and weak symbols
// participate in cross-file analysis; local symbols never leave their file.
type Binding int

const (
	BindGlobal Binding = iota
	BindWeak
	BindLocal
)

func (b Binding) String() string {
	switch b {
	case BindGlobal:
		return "GLOBAL"
	case BindWeak:
		return "WEAK"
	default:
		return "LOCAL"
	}
}

// Observation is one classified symbol table entry: a named symbol that a
// file either defines or references.
type Observation struct {
	Symbol  string
	Defined bool
	Kind    SymbolKind
	Binding Binding
}
