package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/earclip"
)

// Demo of triangulation from the command line. Input on stdin should be
// newline separated points in the form "x y", with each ring separated by an
// extra newline. The first ring is the outer boundary; any further rings are
// holes. Winding order doesn't matter, and none of the input is validated:
// broken input produces a best-effort triangulation, which is the point.

var (
	render = kingpin.Flag("render", "Write a PNG of the triangulation to this path.").String()
	scale  = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("10").Float64()
)

func main() {
	kingpin.Parse()

	rings := readRings(os.Stdin)
	if len(rings) == 0 {
		fmt.Fprintln(os.Stderr, "no rings on stdin")
		os.Exit(1)
	}

	vertices, holeIndices, err := earclip.Flatten(rings, 2)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	triangles, err := earclip.Triangulate(vertices, holeIndices, 2)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s rings, %s vertices, %s triangles\n",
		aurora.Cyan(strconv.Itoa(len(rings))),
		aurora.Cyan(strconv.Itoa(len(vertices)/2)),
		aurora.Green(strconv.Itoa(len(triangles)/3)))

	deviation := earclip.Deviation(vertices, holeIndices, 2, triangles)
	if deviation > 1e-9 {
		fmt.Printf("%s area deviation %g (input is degenerate or self-intersecting)\n",
			aurora.Red("incomplete:"), deviation)
	}

	for i := 0; i+2 < len(triangles); i += 3 {
		fmt.Printf("%d %d %d\n", triangles[i], triangles[i+1], triangles[i+2])
	}

	if *render != "" {
		if err := renderPNG(*render, vertices, triangles, *scale); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func readRings(in *os.File) [][][]float64 {
	var rings [][][]float64
	var points [][]float64

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		points = append(points, []float64{x, y})
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings
}

func renderPNG(path string, vertices []float64, triangles []int, scale float64) error {
	minX, minY := vertices[0], vertices[1]
	maxX, maxY := minX, minY
	for i := 2; i < len(vertices); i += 2 {
		if vertices[i] < minX {
			minX = vertices[i]
		}
		if vertices[i] > maxX {
			maxX = vertices[i]
		}
		if vertices[i+1] < minY {
			minY = vertices[i+1]
		}
		if vertices[i+1] > maxY {
			maxY = vertices[i+1]
		}
	}

	const padding = 10
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetRGBA(0.3, 0.2, 1, 0.8)
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, t := triangles[i]*2, triangles[i+1]*2, triangles[i+2]*2
		c.MoveTo(vertices[a], vertices[a+1])
		c.LineTo(vertices[b], vertices[b+1])
		c.LineTo(vertices[t], vertices[t+1])
		c.ClosePath()
	}
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(1)
	c.Stroke()

	return c.SavePNG(path)
}
