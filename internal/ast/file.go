package ast

import (
	"typelint/internal/source"
)

// File is the root node: an ordered list of top-level statements.
type File struct {
	Span  source.Span
	Stmts []StmtID
}

// Files manages allocation of file nodes.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
