package mechanics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Gravity is the gravitational acceleration at the Earth's surface in m/s².
const Gravity = 9.81

// Force is a planar force given by magnitude (N) and angle (degrees, counter-clockwise from +x).
type Force struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Angle     float64 `json:"angle" yaml:"angle"`
}

// Components returns the x and y components of f.
func (f Force) Components() (fx, fy float64) {
	rad := Radians(f.Angle)
	return f.Magnitude * math.Cos(rad), f.Magnitude * math.Sin(rad)
}

// Vector returns the components of f as a 2D vector.
func (f Force) Vector() mgl64.Vec2 {
	fx, fy := f.Components()
	return mgl64.Vec2{fx, fy}
}

// ForceSystem is an ordered set of forces acting on one body.
// Order only matters for display.
type ForceSystem []Force

// Vector returns the vector sum of every force in s.
func (s ForceSystem) Vector() mgl64.Vec2 {
	var sum mgl64.Vec2
	for _, f := range s {
		sum = sum.Add(f.Vector())
	}
	return sum
}

// NetForce sums the components of every force. An empty system yields (0, 0).
func NetForce(forces ForceSystem) (fx, fy float64) {
	v := forces.Vector()
	return v[0], v[1]
}

// Resultant returns the magnitude and direction (degrees) of the vector (fx, fy).
// The zero vector has direction 0.
func Resultant(fx, fy float64) (magnitude, direction float64) {
	magnitude = math.Sqrt(fx*fx + fy*fy)
	if fx == 0 && fy == 0 {
		return magnitude, 0
	}
	return magnitude, Degrees(math.Atan2(fy, fx))
}

// Acceleration applies a = F/m. It returns ErrInvalidMass when mass <= 0.
func Acceleration(net, mass float64) (float64, error) {
	if mass <= 0 {
		return 0, &ParamError{Field: "mass", Value: mass, Wrapped: ErrInvalidMass}
	}
	return net / mass, nil
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
