// # internal/elfobj/source.go
package elfobj

import (
	"debug/elf"
	"errors"

	"symgraph/internal/errdefs"
)

// Record is one raw symbol table entry as read from an object file. The
// bind/type/section codes are debug/elf's own; nothing outside the
// classifier should consume them.
type Record struct {
	Name    string
	Section elf.SectionIndex
	Bind    elf.SymBind
	Type    elf.SymType
}

// Source provides the symbol table of an object file as a flat record
// sequence. The resolver pipeline only ever sees this interface, which keeps
// it testable without real object files on disk.
type Source interface {
	Load(path string) ([]Record, error)
}

// FileSource reads ELF object files from the filesystem.
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) Load(path string) ([]Record, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errdefs.AddContext(
			errdefs.Wrap(err, errdefs.CodeBadObject, "not a readable ELF file"),
			errdefs.CtxFile, path)
	}
	defer f.Close()

	syms, err := f.Symbols()
	if err != nil {
		if errors.Is(err, elf.ErrNoSymbols) {
			return nil, errdefs.AddContext(
				errdefs.New(errdefs.CodeMissingSymtab, "object file has no symbol table"),
				errdefs.CtxFile, path)
		}
		return nil, errdefs.AddContext(
			errdefs.Wrap(err, errdefs.CodeBadObject, "failed to read symbol table"),
			errdefs.CtxFile, path)
	}

	records := make([]Record, 0, len(syms))
	for _, sym := range syms {
		records = append(records, Record{
			Name:    sym.Name,
			Section: sym.Section,
			Bind:    elf.ST_BIND(sym.Info),
			Type:    elf.ST_TYPE(sym.Info),
		})
	}
	return records, nil
}
