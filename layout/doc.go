/*
Package layout implements the block-flow layout engine: building a tree
of layout boxes from a styled tree, then resolving each box's geometry
per the CSS 2.1 visual formatting model (width resolution, vertical
positioning, content-height roll-up), restricted to normal flow —
floats, inline layout, and positioning schemes beyond normal flow are
out of scope.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("flowbox.layout")
}
