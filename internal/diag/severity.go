package diag

// Severity ranks diagnostics; higher values are more severe.
type Severity uint8

const (
	// SevInfo marks informational output, used for notes.
	SevInfo Severity = iota
	// SevWarning marks lint findings that do not fail the run.
	SevWarning
	// SevError marks diagnostics that make the run fail.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
