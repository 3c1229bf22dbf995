package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"typelint/internal/diag"
	"typelint/internal/source"
)

// Pretty renders diagnostics for humans. The bag is expected to be sorted
// beforehand. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the offending source line with a caret underline, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d.Severity, d.Code, d.Primary, d.Message, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writePretty(w, diag.SevInfo, d.Code, note.Span, note.Msg, fs, opts)
			}
		}
	}
}

func writePretty(w io.Writer, sev diag.Severity, code diag.Code, span source.Span, msg string, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	if file == nil {
		fmt.Fprintf(w, "%s [%s]: %s\n", sevLabel(sev, opts.Color), code.ID(), msg)
		return
	}
	start, _ := fs.Resolve(span)
	path := formatPath(file, fs, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		path, start.Line, start.Col, sevLabel(sev, opts.Color), code.ID(), msg)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s\n", underline(line, start.Col, span.Len(), opts.Color))
}

// underline builds the '^~~~' marker aligned under the span. Columns are
// rune-based, so the pad width comes from the display width of the text
// before the caret.
func underline(line string, col uint32, spanLen uint32, colored bool) string {
	runes := []rune(line)
	idx := int(col) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(runes) {
		idx = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:idx]))

	width := int(spanLen)
	if width < 1 {
		width = 1
	}
	if rest := len(runes) - idx; width > rest && rest > 0 {
		width = rest
	}

	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	return strings.Repeat(" ", pad) + marker
}

func sevLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
