package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. This is not a full (or
// even correct) svg parser. It parses the SVG, finds whatever the first
// polygon is, and converts it into a point list. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) [][]float64 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var points [][]float64
	for _, pair := range strings.Fields(pointString) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, []float64{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

func SimpleStar() [][]float64 {
	var points [][]float64
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(innerRadius)
		if i%2 == 0 {
			radius = outerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, []float64{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

func SquareWithHole() [][][]float64 {
	outer := [][]float64{
		{-5, -5},
		{5, -5},
		{5, 5},
		{-5, 5},
	}
	hole := [][]float64{
		{-2, -2},
		{-2, 2},
		{2, 2},
		{2, -2},
	}
	return [][][]float64{outer, hole}
}

// Flatten a single hole-free ring for tests that don't care about holes.
func flatRing(points [][]float64) []float64 {
	data := make([]float64, 0, len(points)*2)
	for _, p := range points {
		data = append(data, p[0], p[1])
	}
	return data
}
