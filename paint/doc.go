// Package paint walks a layout tree in pre-order and produces an
// ordered display list of draw commands, plus a reference Canvas that
// records those commands into an in-memory pixel buffer.
package paint

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("flowbox.paint")
}
