// # internal/parser/classify.go
package parser

import (
	"debug/elf"
	"log/slog"

	"symgraph/internal/elfobj"
)

// Classify filters one file's raw symbol records down to the entries that
// matter for cross-file analysis: named symbols with external visibility.
// Raw ELF bind/type codes are mapped onto the closed enums here and never
// propagate further down the pipeline.
func Classify(records []elfobj.Record) []Observation {
	var obs []Observation
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		binding := mapBinding(rec.Bind)
		if binding == BindLocal {
			continue
		}
		o := Observation{
			Symbol:  rec.Name,
			Defined: rec.Section != elf.SHN_UNDEF,
			Kind:    mapKind(rec.Type),
			Binding: binding,
		}
		slog.Debug("symbol",
			"name", o.Symbol,
			"defined", o.Defined,
			"kind", o.Kind.String(),
			"binding", o.Binding.String(),
		)
		obs = append(obs, o)
	}
	return obs
}

func mapBinding(bind elf.SymBind) Binding {
	switch bind {
	case elf.STB_GLOBAL:
		return BindGlobal
	case elf.STB_WEAK:
		return BindWeak
	default:
		// STB_LOCAL and any OS/processor-specific bind: not externally
		// visible for our purposes.
		return BindLocal
	}
}

func mapKind(typ elf.SymType) SymbolKind {
	switch typ {
	case elf.STT_FUNC:
		return KindFunction
	case elf.STT_OBJECT, elf.STT_TLS:
		return KindObject
	default:
		return KindOther
	}
}
