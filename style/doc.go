/*
Package style implements the style resolver: style_tree(dom, stylesheet)
builds a styled tree mirroring the DOM one-to-one, where each node
carries the specified-values property map produced by selector matching
and cascading over a single stylesheet. There are no user-agent
defaults and no property inheritance.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("flowbox.style")
}
