package diag

import "typelint/internal/source"

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter (stores into a Bag), DedupReporter (filter).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// ReportError is a shortcut for SevError diagnostics without notes.
func ReportError(r Reporter, code Code, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevError, primary, msg, nil)
}

// ReportWarning is a shortcut for SevWarning diagnostics without notes.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevWarning, primary, msg, nil)
}
