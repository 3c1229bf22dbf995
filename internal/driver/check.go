// Package driver runs the per-file analysis pipeline and fans it out
// over directories.
package driver

import (
	"fmt"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/lint"
	"typelint/internal/parser"
	"typelint/internal/sema"
	"typelint/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not.
const DefaultMaxDiagnostics = 256

// CheckOpts configures a single check run.
type CheckOpts struct {
	MaxDiagnostics int
	Rules          []string // empty selects every rule
	Jobs           int
	Cache          *DiskCache
	// OnFile is invoked after each file finishes, for progress display.
	OnFile func(path string)
}

func (o CheckOpts) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// CheckResult is the outcome of analyzing one file.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Bag     *diag.Bag
	Builder *ast.Builder
	ASTFile ast.FileID
	Checker *sema.Checker
}

// CheckFile runs lex, parse, sema and the lint rules over one loaded
// file, collecting everything into one bag.
func CheckFile(fs *source.FileSet, fileID source.FileID, opts CheckOpts) (*CheckResult, error) {
	file := fs.Get(fileID)
	if file == nil {
		return nil, fmt.Errorf("file %d not found in FileSet", fileID)
	}

	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	strs := source.NewInterner()
	builder := ast.NewBuilder(ast.Hints{})
	astFile := parser.ParseFile(builder, strs, file, reporter)
	checker := sema.Check(builder, strs, astFile, reporter)

	rules, err := lint.Rules(checker, opts.Rules)
	if err != nil {
		return nil, err
	}
	lint.Run(checker, builder, strs, astFile, rules, reporter)

	bag.Sort()
	return &CheckResult{
		Path:    file.Path,
		FileID:  fileID,
		Bag:     bag,
		Builder: builder,
		ASTFile: astFile,
		Checker: checker,
	}, nil
}
