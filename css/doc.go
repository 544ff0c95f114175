/*
Package css implements the stylesheet data model and the CSS parser: a
hand-written recursive-descent reader producing a Stylesheet from source
text. The grammar accepted is a strict, small subset of real CSS —
single compound selectors only (tag, id, classes, no combinators or
pseudo-classes), three value kinds (keyword, length in px, color), no
at-rules and no comments — and any byte the grammar doesn't expect
raises a *ParseError* carrying the offending byte's offset.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("flowbox.css")
}
