// Package version records the build fingerprints stamped into the
// typelint binary via -ldflags "-X typelint/internal/version.Number=...".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Number is the plain semantic version, suffix included.
	Number = "0.1.0-dev"

	// Commit is the git commit hash the binary was built from.
	Commit = ""

	// Date is the build timestamp in ISO-8601.
	Date = ""
)

var partColors = [3]*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Pretty tints each dotted component of a semantic version for terminal
// banners, leaving any pre-release suffix plain. Strings that do not split
// into three components come back unchanged.
func Pretty(number string) string {
	base, suffix, _ := strings.Cut(number, "-")
	parts := strings.Split(base, ".")
	if len(parts) != len(partColors) {
		return number
	}
	tinted := make([]string, len(parts))
	for i, part := range parts {
		tinted[i] = partColors[i].Sprint(part)
	}
	out := strings.Join(tinted, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
