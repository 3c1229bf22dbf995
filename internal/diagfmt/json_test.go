package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"typelint/internal/diag"
	"typelint/internal/diagfmt"
	"typelint/internal/source"
)

func jsonFixture(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tl", []byte("one();\ntwo();\n"))
	bag := diag.NewBag(16)
	bag.Add(diag.NewWarning(diag.LintUnusedReturn,
		source.Span{File: id, Start: 0, End: 3}, "return value of one is ignored"))
	bag.Add(diag.NewWarning(diag.LintUnusedReturn,
		source.Span{File: id, Start: 7, End: 10}, "return value of two is ignored").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "first call here"))
	return bag, fs
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag, fs := jsonFixture(t)
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{})

	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, len = %d, want 2", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "LNT4001" {
		t.Errorf("severity/code = %q/%q", d.Severity, d.Code)
	}
	if d.Location.File != "test.tl" || d.Location.StartByte != 0 || d.Location.EndByte != 3 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 0 {
		t.Errorf("positions must be omitted unless requested, got %+v", d.Location)
	}
	if len(d.Notes) != 0 {
		t.Errorf("notes must be omitted unless requested")
	}
}

func TestBuildDiagnosticsOutput_Positions(t *testing.T) {
	bag, fs := jsonFixture(t)
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{IncludePositions: true})

	loc := out.Diagnostics[1].Location
	if loc.StartLine != 2 || loc.StartCol != 1 || loc.EndLine != 2 || loc.EndCol != 4 {
		t.Errorf("positions = %+v, want 2:1 through 2:4", loc)
	}
}

func TestBuildDiagnosticsOutput_MaxTruncates(t *testing.T) {
	bag, fs := jsonFixture(t)
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 1})

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, len = %d, want 1", out.Count, len(out.Diagnostics))
	}
	if bag.Len() != 2 {
		t.Errorf("truncation must not touch the bag, Len = %d", bag.Len())
	}
}

func TestBuildDiagnosticsOutput_Notes(t *testing.T) {
	bag, fs := jsonFixture(t)
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{IncludeNotes: true})

	notes := out.Diagnostics[1].Notes
	if len(notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(notes))
	}
	if notes[0].Message != "first call here" || notes[0].Location.StartByte != 0 {
		t.Errorf("note = %+v", notes[0])
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	bag, fs := jsonFixture(t)

	var buf strings.Builder
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("count = %d, want 2", decoded.Count)
	}
	if decoded.Diagnostics[1].Message != "return value of two is ignored" {
		t.Errorf("message = %q", decoded.Diagnostics[1].Message)
	}
}
