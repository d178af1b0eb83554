package resume

import "fmt"

// PathError is returned when a write names a field outside the addressable set
type PathError struct {
	Path Path
}

func (e *PathError) Error() string {
	return fmt.Sprintf("unknown resume path: %q", string(e.Path))
}

// ValueError is returned when a value does not fit the field it is written to
type ValueError struct {
	Path    Path
	Message string
	Cause   error
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid value for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Path, e.Message)
}

func (e *ValueError) Unwrap() error {
	return e.Cause
}
