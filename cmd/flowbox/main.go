// Command flowbox demonstrates the full core pipeline — HTML parse,
// CSS parse, style resolution, layout, and painting — over a small
// embedded sample page, printing the resulting display list. It takes
// no flags and reads no files.
package main

import (
	"fmt"
	"os"

	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/debug"
	"github.com/corvidfold/flowbox/dom"
	"github.com/corvidfold/flowbox/layout"
	"github.com/corvidfold/flowbox/paint"
	"github.com/corvidfold/flowbox/style"
)

const sampleHTML = `<html>
  <body>
    <h1 class="title">flowbox</h1>
    <p>a toy layout engine</p>
  </body>
</html>`

const sampleCSS = `
html { display: block; }
body { display: block; background: #ffffff; }
h1 { display: block; height: 40px; margin-bottom: 10px; background: #3355ff; }
p { display: block; height: 20px; }
.title { border-color: #000000; border-top-width: 2px; }
`

func main() {
	domRoot, err := dom.Parse(sampleHTML)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse HTML:", err)
		os.Exit(1)
	}

	sheet, err := css.Parse(sampleCSS)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse CSS:", err)
		os.Exit(1)
	}

	styled := style.Tree(domRoot, sheet)

	viewport := layout.Dimensions{Width: 800, Height: 600}
	box, err := layout.Tree(styled, viewport)
	if err != nil {
		fmt.Fprintln(os.Stderr, "layout:", err)
		os.Exit(1)
	}

	fmt.Println(debug.LayoutTree(box))

	list := paint.BuildDisplayList(box)
	for i, cmd := range list {
		fmt.Printf("%d: SolidColor(color=%v, rect=%+v)\n", i, cmd.Color, cmd.Rect)
	}
}
