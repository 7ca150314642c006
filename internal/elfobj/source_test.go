// # internal/elfobj/source_test.go
package elfobj

import (
	"debug/elf"
	"os"
	"path/filepath"
	"testing"

	"symgraph/internal/elfobj/elfobjtest"
	"symgraph/internal/errdefs"
)

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.o")

	err := elfobjtest.WriteObject(path, []byte{0xc3}, []elfobjtest.Sym{
		{Name: "foo", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: true},
		{Name: "bar", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: false},
		{Name: "counter", Bind: elf.STB_WEAK, Type: elf.STT_OBJECT, Defined: true},
	}, true)
	if err != nil {
		t.Fatalf("WriteObject failed: %v", err)
	}

	records, err := NewFileSource().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if records[0].Name != "foo" || records[0].Bind != elf.STB_GLOBAL || records[0].Type != elf.STT_FUNC {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[0].Section == elf.SHN_UNDEF {
		t.Error("Expected foo to be defined")
	}
	if records[1].Section != elf.SHN_UNDEF {
		t.Error("Expected bar to be undefined")
	}
	if records[2].Bind != elf.STB_WEAK || records[2].Type != elf.STT_OBJECT {
		t.Errorf("Unexpected third record: %+v", records[2])
	}
}

func TestFileSource_MissingSymtab(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stripped.o")

	if err := elfobjtest.WriteObject(path, []byte{0xc3}, nil, false); err != nil {
		t.Fatalf("WriteObject failed: %v", err)
	}

	_, err := NewFileSource().Load(path)
	if err == nil {
		t.Fatal("Expected error for object without symtab")
	}
	if !errdefs.IsCode(err, errdefs.CodeMissingSymtab) {
		t.Errorf("Expected MISSING_SYMTAB, got %v", err)
	}
}

func TestFileSource_NotELF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.o")

	if err := os.WriteFile(path, []byte("not an object file"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileSource().Load(path)
	if err == nil {
		t.Fatal("Expected error for non-ELF file")
	}
	if !errdefs.IsCode(err, errdefs.CodeBadObject) {
		t.Errorf("Expected BAD_OBJECT, got %v", err)
	}
}
