// # internal/dedup/dedup.go
package dedup

import (
	"crypto/md5"
	"debug/elf"
	"encoding/hex"
	"path/filepath"

	"symgraph/internal/errdefs"
)

// Group is a set of object files whose .text sections are byte-identical.
type Group struct {
	Hash  string
	Files []string
}

// Scanner hashes the code section of object files to find duplicate
// compiled code. It shares no state with the symbol analysis pipeline.
type Scanner struct {
	hashes map[string][]string // hash -> base names
	order  []string            // hashes in first-seen order
}

func NewScanner() *Scanner {
	return &Scanner{hashes: make(map[string][]string)}
}

// Add hashes the .text section of the object file at path. Files without a
// .text section are reported as an error and contribute nothing.
func (s *Scanner) Add(path string) error {
	name := filepath.Base(path)

	f, err := elf.Open(path)
	if err != nil {
		return errdefs.AddContext(
			errdefs.Wrap(err, errdefs.CodeBadObject, "not a readable ELF file"),
			errdefs.CtxFile, path)
	}
	defer f.Close()

	section := f.Section(".text")
	if section == nil {
		return errdefs.AddContext(
			errdefs.New(errdefs.CodeBadObject, "object file has no .text section"),
			errdefs.CtxFile, path)
	}

	data, err := section.Data()
	if err != nil {
		return errdefs.AddContext(
			errdefs.Wrap(err, errdefs.CodeBadObject, "failed to read .text section"),
			errdefs.CtxFile, path)
	}

	sum := md5.Sum(data)
	hash := hex.EncodeToString(sum[:])
	if _, seen := s.hashes[hash]; !seen {
		s.order = append(s.order, hash)
	}
	s.hashes[hash] = append(s.hashes[hash], name)
	return nil
}

// Duplicates returns every group of two or more files sharing identical code,
// in first-seen order.
func (s *Scanner) Duplicates() []Group {
	var groups []Group
	for _, hash := range s.order {
		files := s.hashes[hash]
		if len(files) > 1 {
			groups = append(groups, Group{Hash: hash, Files: files})
		}
	}
	return groups
}
