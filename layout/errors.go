package layout

import "fmt"

// LayoutError reports an invariant violation found during layout: a
// value that should be a length isn't, or the root styled node has
// display:none.
type LayoutError struct {
	Property string
	Message  string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: %s: %s", e.Property, e.Message)
}

func newLayoutError(property, format string, args ...interface{}) *LayoutError {
	return &LayoutError{Property: property, Message: fmt.Sprintf(format, args...)}
}
