package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/earclip/dbg"
)

// Debug visualization for rings and triangulations. dbgDraw renders into the
// terminal (iTerm only); dumpRing gives a colored textual walk of a ring.
// None of this is called by the engine itself; sprinkle calls in while
// debugging.

// Padding around the shape so vertices on the hull aren't clipped
const dbgDrawPadding = 20

// Helper to draw and print a ring in the terminal for debugging. Nodes are
// labeled with their readable names so they can be matched against dumpRing
// output.
func dbgDrawRing(start *node, scale float64) {
	if start == nil {
		fmt.Println("dbgDrawRing: no ring")
		return
	}
	c := dbgContext(collectRing(start), scale)

	c.SetRGB(0, 1, 0)
	c.SetLineWidth(2)
	p := start
	c.MoveTo(p.x, p.y)
	for p = p.next; p != start; p = p.next {
		c.LineTo(p.x, p.y)
	}
	c.ClosePath()
	c.Stroke()

	p = start
	for {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(p.x, p.y, 3/scale)
		c.Fill()
		labelAt(c, p.x, p.y, dbg.Name(p))
		p = p.next
		if p == start {
			break
		}
	}

	dbgFlush(c)
}

// Draw a finished triangulation over its flat buffer.
func dbgDrawTriangles(data []float64, dim int, triangles []int, scale float64) {
	var nodes []*node
	for i := 0; i < len(data); i += dim {
		nodes = append(nodes, &node{i: i, x: data[i], y: data[i+1]})
	}
	if len(nodes) == 0 {
		fmt.Println("dbgDrawTriangles: no vertices")
		return
	}
	c := dbgContext(nodes, scale)

	c.SetRGBA(0.3, 0.2, 1, 0.5)
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, t := nodes[triangles[i]], nodes[triangles[i+1]], nodes[triangles[i+2]]
		c.MoveTo(a.x, a.y)
		c.LineTo(b.x, b.y)
		c.LineTo(t.x, t.y)
		c.ClosePath()
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(1)
	c.Stroke()

	dbgFlush(c)
}

// Set up a context scaled and translated so the given nodes fit with padding.
func dbgContext(nodes []*node, scale float64) *gg.Context {
	minX, minY := nodes[0].x, nodes[0].y
	maxX, maxY := minX, minY
	for _, p := range nodes {
		if p.x < minX {
			minX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}

func labelAt(c *gg.Context, x, y float64, label string) {
	// Text has to be drawn in native coordinates or it comes out scaled with
	// the shape
	nx, ny := c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, nx, ny-6, 0.5, 0.5)
	c.Pop()
}

func dbgFlush(c *gg.Context) {
	// Save to temp file, then print to terminal
	c.SavePNG("/tmp/earclip.png")
	imgcat.CatFile("/tmp/earclip.png", os.Stdout)
}

func collectRing(start *node) []*node {
	var nodes []*node
	p := start
	for {
		nodes = append(nodes, p)
		p = p.next
		if p == start {
			return nodes
		}
	}
}

// Colored textual walk of a ring. Steiner points come out red, z-indexed
// nodes cyan. Pass raw=true to also spew the first node's full structure
// (spew handles the cyclic links).
func dumpRing(start *node, raw bool) string {
	if start == nil {
		return "(no ring)"
	}
	var b strings.Builder
	for _, p := range collectRing(start) {
		name := dbg.Name(p)
		switch {
		case p.steiner:
			name = aurora.Red(name).String()
		case p.hasZ:
			name = aurora.Cyan(name).String()
		default:
			name = aurora.Green(name).String()
		}
		fmt.Fprintf(&b, "%s i=%d (%g, %g)\n", name, p.i, p.x, p.y)
	}
	if raw {
		b.WriteString(spew.Sdump(start))
	}
	return b.String()
}
