package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Point is a node coordinate as declared in a graph description (x = longitude, y = latitude
// for geographic graphs)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is an axis-aligned rectangle in graph coordinates
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Orb converts the point to an orb.Point
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return planar.Distance(p.Orb(), other.Orb())
}

// DistanceMeters calculates the distance in meters between two points in lng/lat coordinates
// Uses the Haversine formula
func (p Point) DistanceMeters(other Point) float64 {
	return geo.DistanceHaversine(p.Orb(), other.Orb())
}

// IsGeographic reports whether the point can be read as a lng/lat pair
func (p Point) IsGeographic() bool {
	return p.X >= -180 && p.X <= 180 && p.Y >= -90 && p.Y <= 90
}

// Bound converts the box to an orb.Bound
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// Normalize maps p into [0,1]x[0,1] relative to the box. Degenerate axes map to 0.
func (b BoundingBox) Normalize(p Point) (float64, float64) {
	nx, ny := 0.0, 0.0
	if w := b.MaxX - b.MinX; w != 0 {
		nx = (p.X - b.MinX) / w
	}
	if h := b.MaxY - b.MinY; h != 0 {
		ny = (p.Y - b.MinY) / h
	}
	return nx, ny
}

// boundingBoxFromBound converts an orb.Bound back to a BoundingBox
func boundingBoxFromBound(bound orb.Bound) BoundingBox {
	return BoundingBox{
		MinX: bound.Min.X(),
		MinY: bound.Min.Y(),
		MaxX: bound.Max.X(),
		MaxY: bound.Max.Y(),
	}
}

// isFiniteNonNegative checks that a cost can be used as an edge weight
func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
