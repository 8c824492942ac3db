package world

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned bounding volume.
type Box struct {
	Min, Max mgl32.Vec3
}

// BoxAround returns a cube of the given half extent centered on c.
func BoxAround(c mgl32.Vec3, half float32) Box {
	h := mgl32.Vec3{half, half, half}
	return Box{Min: c.Sub(h), Max: c.Add(h)}
}

// Intersects reports whether b and o overlap. Touching faces count.
func (b Box) Intersects(o Box) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
