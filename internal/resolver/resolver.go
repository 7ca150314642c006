// # internal/resolver/resolver.go
package resolver

import (
	"symgraph/internal/observability"
	"symgraph/internal/parser"
)

// Symbol is one entry in the global namespace. A symbol has at most one
// defining file; the first file processed that defines it wins, and later
// definers are reported as conflicts. Kind is fixed at the first observation
// of the name, defining or referencing, and never re-derived.
type Symbol struct {
	Name     string
	DefFile  string // empty until a definer is seen
	RefFiles []string
	Kind     parser.SymbolKind

	refSeen map[string]bool
}

// File records what one object file contributed, in symbol table order.
type File struct {
	Name    string
	DefSyms []string
	RefSyms []string
}

// Conflict is a second (or later) definition of an already-defined symbol.
type Conflict struct {
	Symbol  string
	File    string
	Definer string
}

// Resolver merges per-file symbol observations into one global namespace.
// It is single-writer: AddFile must be called file-by-file in input order,
// and the accessors are only meaningful once every file has been added.
type Resolver struct {
	symbols   map[string]*Symbol
	symOrder  []string
	files     map[string]*File
	fileOrder []string
	conflicts []Conflict

	// OnConflict, when set, is invoked at the point each conflict is
	// detected, before processing continues.
	OnConflict func(Conflict)
}

func NewResolver() *Resolver {
	return &Resolver{
		symbols: make(map[string]*Symbol),
		files:   make(map[string]*File),
	}
}

// AddFile consumes the classified symbol stream of one object file. Input
// order is significant: the first file to define a symbol name stays its
// definer, regardless of binding strength. A real linker would apply
// weak-vs-global precedence here; this tool deliberately does not.
func (r *Resolver) AddFile(fileName string, observations []parser.Observation) {
	file, ok := r.files[fileName]
	if !ok {
		file = &File{Name: fileName}
		r.files[fileName] = file
		r.fileOrder = append(r.fileOrder, fileName)
	}

	for _, obs := range observations {
		if obs.Defined {
			r.addDefinition(file, obs)
		} else {
			r.addReference(file, obs)
		}
	}
	observability.SymbolsTracked.Set(float64(len(r.symbols)))
}

func (r *Resolver) addDefinition(file *File, obs parser.Observation) {
	sym, ok := r.symbols[obs.Symbol]
	switch {
	case !ok:
		sym = r.newSymbol(obs)
		sym.DefFile = file.Name
	case sym.DefFile == "":
		// A previously referenced symbol now has its definer.
		sym.DefFile = file.Name
	default:
		c := Conflict{Symbol: obs.Symbol, File: file.Name, Definer: sym.DefFile}
		r.conflicts = append(r.conflicts, c)
		observability.DefinitionConflicts.Inc()
		if r.OnConflict != nil {
			r.OnConflict(c)
		}
	}
	file.DefSyms = append(file.DefSyms, obs.Symbol)
}

func (r *Resolver) addReference(file *File, obs parser.Observation) {
	sym, ok := r.symbols[obs.Symbol]
	if !ok {
		sym = r.newSymbol(obs)
	}
	if !sym.refSeen[file.Name] {
		sym.refSeen[file.Name] = true
		sym.RefFiles = append(sym.RefFiles, file.Name)
	}
	file.RefSyms = append(file.RefSyms, obs.Symbol)
}

func (r *Resolver) newSymbol(obs parser.Observation) *Symbol {
	sym := &Symbol{
		Name:    obs.Symbol,
		Kind:    obs.Kind,
		refSeen: make(map[string]bool),
	}
	r.symbols[obs.Symbol] = sym
	r.symOrder = append(r.symOrder, obs.Symbol)
	return sym
}

// Symbols returns every tracked symbol in first-seen order.
func (r *Resolver) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(r.symOrder))
	for _, name := range r.symOrder {
		out = append(out, r.symbols[name])
	}
	return out
}

// Lookup returns the symbol for name, if tracked.
func (r *Resolver) Lookup(name string) (*Symbol, bool) {
	sym, ok := r.symbols[name]
	return sym, ok
}

// Files returns every processed file in input order.
func (r *Resolver) Files() []*File {
	out := make([]*File, 0, len(r.fileOrder))
	for _, name := range r.fileOrder {
		out = append(out, r.files[name])
	}
	return out
}

// Conflicts returns every definition conflict, in detection order.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}
