package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"typelint/internal/ast"
	"typelint/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is within file content bounds
// 2) every statement span is non-empty and fully contained in file.Span
// 3) file.Span covers the union of statement spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var union source.Span
	var haveStmt bool
	for _, id := range f.Stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("statement span %v is outside file span %v", sp, f.Span)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveStmt {
		if union.Start < f.Span.Start || union.End > f.Span.End {
			return fmt.Errorf("file span %v does not cover union of statements %v", f.Span, union)
		}
	}
	return nil
}
