package scheduler

// ValidationKind identifies why a schedule configuration was rejected.
type ValidationKind string

const (
	// NoEmployees means the roster is empty.
	NoEmployees ValidationKind = "No employees"
	// InvalidConfiguration covers every rejected parameter combination.
	InvalidConfiguration ValidationKind = "Invalid configuration"
)

// ValidationError is reported before any assignment work begins. It is
// terminal for the request; no partial schedule exists when it is returned.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}
