package dom

import "fmt"

// ParseError reports a syntactic failure while reading HTML source: an
// expected literal was absent at the current cursor position, or the
// cursor found a byte no production in the grammar accepts.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dom: parse error at byte %d: %s", e.Offset, e.Message)
}

func newParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
