// Package elfobjtest builds minimal ELF64 relocatable objects for tests.
// The files carry a .text section and a .symtab/.strtab pair, which is all
// the analyzer looks at.
package elfobjtest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
)

type Sym struct {
	Name    string
	Bind    elf.SymBind
	Type    elf.SymType
	Defined bool // defined symbols are placed in .text
}

type elfSym struct {
	Name  uint32
	Info  uint8
	Other uint8
	Shndx uint16
	Value uint64
	Size  uint64
}

const (
	ehSize = 64
	shSize = 64
)

// WriteObject writes a little-endian x86-64 relocatable object to path. When
// withSymtab is false the object has only the .text section, which makes
// debug/elf report ErrNoSymbols.
func WriteObject(path string, text []byte, syms []Sym, withSymtab bool) error {
	var strtab bytes.Buffer
	strtab.WriteByte(0)

	entries := []elfSym{{}} // index 0 is the null symbol
	for _, s := range syms {
		nameOff := uint32(strtab.Len())
		strtab.WriteString(s.Name)
		strtab.WriteByte(0)
		shndx := uint16(elf.SHN_UNDEF)
		if s.Defined {
			shndx = 1 // .text
		}
		entries = append(entries, elfSym{
			Name:  nameOff,
			Info:  uint8(s.Bind)<<4 | uint8(s.Type),
			Shndx: shndx,
		})
	}

	var symtab bytes.Buffer
	for _, e := range entries {
		binary.Write(&symtab, binary.LittleEndian, e)
	}

	shstrtab := []byte("\x00.text\x00.symtab\x00.strtab\x00.shstrtab\x00")
	nameText := uint32(1)
	nameSymtab := uint32(7)
	nameStrtab := uint32(15)
	nameShstrtab := uint32(23)

	type section struct {
		header elf.Section64
		data   []byte
	}

	sections := []section{
		{header: elf.Section64{}}, // SHT_NULL
		{
			header: elf.Section64{
				Name: nameText, Type: uint32(elf.SHT_PROGBITS),
				Flags: uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
			},
			data: text,
		},
	}
	if withSymtab {
		sections = append(sections,
			section{
				header: elf.Section64{
					Name: nameSymtab, Type: uint32(elf.SHT_SYMTAB),
					Link: 3, Info: 1, Entsize: 24, Addralign: 8,
				},
				data: symtab.Bytes(),
			},
			section{
				header: elf.Section64{Name: nameStrtab, Type: uint32(elf.SHT_STRTAB)},
				data:   strtab.Bytes(),
			},
		)
	}
	sections = append(sections, section{
		header: elf.Section64{Name: nameShstrtab, Type: uint32(elf.SHT_STRTAB)},
		data:   shstrtab,
	})
	shstrndx := len(sections) - 1

	// Lay out section data after the ELF header, 8-byte aligned.
	off := uint64(ehSize)
	for i := range sections {
		if len(sections[i].data) == 0 {
			continue
		}
		off = align8(off)
		sections[i].header.Off = off
		sections[i].header.Size = uint64(len(sections[i].data))
		off += uint64(len(sections[i].data))
	}
	shoff := align8(off)

	var buf bytes.Buffer
	hdr := elf.Header64{
		Type:      uint16(elf.ET_REL),
		Machine:   uint16(elf.EM_X86_64),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     shoff,
		Ehsize:    ehSize,
		Shentsize: shSize,
		Shnum:     uint16(len(sections)),
		Shstrndx:  uint16(shstrndx),
	}
	ident := []byte{0x7f, 'E', 'L', 'F',
		byte(elf.ELFCLASS64), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT),
		0, 0, 0, 0, 0, 0, 0, 0, 0}
	copy(hdr.Ident[:], ident)
	binary.Write(&buf, binary.LittleEndian, hdr)

	for _, s := range sections {
		if len(s.data) == 0 {
			continue
		}
		pad(&buf, int(s.header.Off))
		buf.Write(s.data)
	}
	pad(&buf, int(shoff))
	for _, s := range sections {
		binary.Write(&buf, binary.LittleEndian, s.header)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func align8(v uint64) uint64 {
	return (v + 7) &^ 7
}

func pad(buf *bytes.Buffer, to int) {
	for buf.Len() < to {
		buf.WriteByte(0)
	}
}
