package diag

// Severity defines the importance of a diagnostic marker.
type Severity uint8

const (
	// SevInfo is for informational markers.
	SevInfo Severity = iota
	// SevWarning is for warning markers.
	SevWarning
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
