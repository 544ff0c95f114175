package layout

import (
	"testing"

	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/dom"
	"github.com/corvidfold/flowbox/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewport(width, height float32) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// An auto-width block fills its containing block's full content width.
func TestAutoWidthFillsContainingBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	assert.Equal(t, float32(800), box.Dimensions.Width)
	assert.Equal(t, float32(0), box.Dimensions.X)
}

// Overconstrained width + margins overflows into margin-right.
func TestOverconstrainedWidthOverflowsMarginRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; width: 700px; margin-left: 50px; margin-right: 100px; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	assert.Equal(t, float32(700), box.Dimensions.Width)
	assert.Equal(t, float32(50), box.Dimensions.Margin.Left)
	// underflow = 800 - (50+100+700) = -50, absorbed into margin-right
	assert.Equal(t, float32(50), box.Dimensions.Margin.Right)
}

// A parent's height rolls up from its children's stacked margin-box
// heights.
func TestHeightRollsUpFromChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div><p>a</p><p>b</p></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; } p { display: block; height: 20px; margin-bottom: 5px; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	assert.Equal(t, float32(50), box.Dimensions.Height) // 2 * (20 + 5)
	kids := box.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, float32(0), kids[0].Dimensions.Y)
	assert.Equal(t, float32(25), kids[1].Dimensions.Y)
}

// Testable property: width conservation — margin-box width always
// equals the containing block's width for an auto-width block box.
func TestPropertyWidthConservation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; padding-left: 10px; border-left-width: 2px; margin-right: 30px; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(500, 0))
	require.NoError(t, err)
	d := box.Dimensions
	marginBoxWidth := d.Margin.Left + d.Border.Left + d.Padding.Left + d.Width + d.Padding.Right + d.Border.Right + d.Margin.Right
	assert.Equal(t, float32(500), marginBoxWidth)
}

// Testable property: vertical stacking — siblings never overlap.
func TestPropertyVerticalStackingNoOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div><p>a</p><p>b</p><p>c</p></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; } p { display: block; height: 10px; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	kids := box.Children()
	require.Len(t, kids, 3)
	for i := 1; i < len(kids); i++ {
		prevBottom := kids[i-1].Dimensions.Y + kids[i-1].Dimensions.MarginBoxHeight()
		assert.GreaterOrEqual(t, kids[i].Dimensions.Y, prevBottom)
	}
}

// Testable property: display-none omission — a display:none subtree
// produces no box at all, not even an empty one.
func TestPropertyDisplayNoneOmission(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div><p>a</p><p>b</p></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; } p { display: none; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	assert.Empty(t, box.Children())
}

func TestRootDisplayNoneIsLayoutError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: none; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	_, err = Tree(styled, viewport(800, 0))
	var layoutErr *LayoutError
	assert.ErrorAs(t, err, &layoutErr)
}

// Testable property: anonymous block invariant — contiguous inline
// children of a block box are grouped under a single trailing
// AnonymousBox, never split into several or merged across a block
// sibling.
func TestPropertyAnonymousBlockInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div>hello<span>world</span><p>block</p>more text</div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; } p { display: block; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	box, err := Tree(styled, viewport(800, 0))
	require.NoError(t, err)
	kids := box.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, AnonymousBox, kids[0].Kind)
	assert.Equal(t, BlockBox, kids[1].Kind)
	assert.Equal(t, AnonymousBox, kids[2].Kind)
	assert.Nil(t, kids[0].Styled)
}

func TestNonLengthWidthIsLayoutError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { display: block; width: #ff0000; }")
	require.NoError(t, err)
	styled := style.Tree(domRoot, sheet)
	_, err = Tree(styled, viewport(800, 0))
	var layoutErr *LayoutError
	assert.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, "width", layoutErr.Property)
}

func TestInlineRootStillBuildsAndLaysOutChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<span>hi</span>`)
	require.NoError(t, err)
	box, err := Tree(style.Tree(domRoot, css.Stylesheet{}), viewport(800, 0))
	require.NoError(t, err)
	assert.Equal(t, InlineBox, box.Kind)
	require.Len(t, box.Children(), 1)
}
