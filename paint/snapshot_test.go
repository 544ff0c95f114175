package paint

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// TestDisplayListSnapshot pins the exact command sequence for a small
// multi-box page, catching accidental reordering or rect-math drift in
// renderBox/renderBackground/renderBorders across changes.
func TestDisplayListSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.paint")
	defer teardown()
	//
	box := buildLayout(t, `<div><p>a</p><p>b</p></div>`,
		`div { display: block; background: #101010; border-color: #202020; border-top-width: 1px; }
		 p { display: block; height: 10px; background: #303030; margin-bottom: 2px; }`,
		200, 0)
	list := BuildDisplayList(box)

	var rendered string
	for i, cmd := range list {
		rendered += fmt.Sprintf("%d: color=%v rect=%+v\n", i, cmd.Color, cmd.Rect)
	}
	snaps.MatchSnapshot(t, rendered)
	require.NotEmpty(t, list)
}
