// Package debug renders flowbox's DOM, styled, and layout trees as
// ASCII art for test failure output and ad-hoc inspection, using the
// github.com/xlab/treeprint idiom.
package debug

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("flowbox.debug")
}
