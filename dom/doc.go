/*
Package dom implements the DOM node type and the HTML parser that builds
a DOM tree from source text.

A DOM tree is a closed sum of two node kinds, element and text, built on
top of the module's generic tree.Node[T] container (see package tree).
The parser is a hand-written recursive-descent reader over the source's
byte positions; it never backtracks and never recovers from malformed
input — any unexpected byte produces a *ParseError*.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}
