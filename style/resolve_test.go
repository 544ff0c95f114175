package style

import (
	"testing"

	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeDeterminismBySpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	elem, err := dom.Parse(`<div id="x" class="y"></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("* { color: #000000; } div#x.y { color: #ff0000; } div { color: #00ff00; }")
	require.NoError(t, err)
	values := specifiedValues(elem, sheet)
	assert.Equal(t, css.RGBA(255, 0, 0, 255), values["color"])
}

func TestClassMatchingIsSetSemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	sheet, err := css.Parse(".a.b { color: #ff0000; }")
	require.NoError(t, err)
	sel := sheet.Rules[0].Selectors[0]
	a, err := dom.Parse(`<div class="a b"></div>`)
	require.NoError(t, err)
	b, err := dom.Parse(`<div class="b a"></div>`)
	require.NoError(t, err)
	assert.True(t, matchesSelector(a, sel))
	assert.True(t, matchesSelector(b, sel))
}

func TestUniversalSelectorMatchesEverything(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	sheet, err := css.Parse("* { color: #ff0000; }")
	require.NoError(t, err)
	sel := sheet.Rules[0].Selectors[0]
	elem, err := dom.Parse(`<span></span>`)
	require.NoError(t, err)
	assert.True(t, matchesSelector(elem, sel))
}

func TestDisplayHelperDefaultsToInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<span>x</span>`)
	require.NoError(t, err)
	styled := Tree(domRoot, css.Stylesheet{})
	assert.Equal(t, Inline, styled.Display())
}

func TestDisplayHelperReadsBlockAndNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div><p>a</p><span>b</span></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("p { display: block; } span { display: none; }")
	require.NoError(t, err)
	styled := Tree(domRoot, sheet)
	require.Len(t, styled.Children(), 2)
	assert.Equal(t, Block, styled.Children()[0].Display())
	assert.Equal(t, None, styled.Children()[1].Display())
}

func TestLookupFallsBackToShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<div></div>`)
	require.NoError(t, err)
	sheet, err := css.Parse("div { margin: 10px; }")
	require.NoError(t, err)
	styled := Tree(domRoot, sheet)
	v := styled.Lookup("margin-left", "margin", css.Length(0, "px"))
	assert.Equal(t, css.Length(10, "px"), v)
}

func TestStyleTreeMirrorsDOMShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.style")
	defer teardown()
	//
	domRoot, err := dom.Parse(`<ul><li>one</li><li>two</li></ul>`)
	require.NoError(t, err)
	styled := Tree(domRoot, css.Stylesheet{})
	require.Len(t, styled.Children(), 2)
	assert.True(t, styled.Children()[0].DOMNode.IsElement())
	assert.Empty(t, styled.Children()[0].Children()[0].Properties)
}
