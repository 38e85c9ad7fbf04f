package mechanics

import "math"

// MotionState classifies a body after friction is resolved.
type MotionState string

const (
	Static  MotionState = "static"
	Sliding MotionState = "sliding"
	Kinetic MotionState = "kinetic"
)

// Moving reports whether the state describes a body in motion.
func (s MotionState) Moving() bool {
	return s == Sliding || s == Kinetic
}

// FrictionResolution is a snapshot of the forces on a body resting on a surface.
//
// Driving is the force component along the surface that tends to cause motion:
// the parallel weight component on an incline, or the horizontal part of an
// applied force on level ground.
type FrictionResolution struct {
	State   MotionState `json:"state"`
	Weight  float64     `json:"weight"`
	Driving float64     `json:"driving"`
	// Perpendicular is the weight component pressing into the surface.
	Perpendicular float64 `json:"perpendicular"`
	// Lift is the upward part of an applied force; zero on an incline.
	Lift         float64 `json:"lift"`
	Normal       float64 `json:"normal"`
	MaxStatic    float64 `json:"max_static"`
	Kinetic      float64 `json:"kinetic"`
	Friction     float64 `json:"friction"`
	NetForce     float64 `json:"net_force"`
	Acceleration float64 `json:"acceleration"`
	// Liftoff is set when the normal force came out negative.
	Liftoff bool `json:"liftoff"`
}

// ResolveIncline resolves a body of the given mass resting on a plane inclined by angle degrees.
func ResolveIncline(mass, angle, muStatic, muKinetic float64) FrictionResolution {
	rad := Radians(angle)
	weight := mass * Gravity
	parallel := weight * math.Sin(rad)
	normal := weight * math.Cos(rad)

	r := FrictionResolution{Weight: weight, Driving: parallel, Perpendicular: normal, Normal: normal}
	r.resolve(mass, muStatic, muKinetic, Sliding)
	return r
}

// ResolveAppliedForce resolves a body on level ground pushed by a force of the given
// magnitude at angle degrees above the horizontal. The vertical component reduces the
// normal force; the result is not clamped when it exceeds the weight.
func ResolveAppliedForce(mass, magnitude, angle, muStatic, muKinetic float64) FrictionResolution {
	fx, fy := Force{Magnitude: magnitude, Angle: angle}.Components()
	weight := mass * Gravity

	r := FrictionResolution{Weight: weight, Driving: fx, Perpendicular: weight, Lift: fy, Normal: weight - fy}
	r.resolve(mass, muStatic, muKinetic, Kinetic)
	return r
}

// resolve applies the static/kinetic decision. Equality resolves to static.
func (r *FrictionResolution) resolve(mass, muStatic, muKinetic float64, moving MotionState) {
	r.MaxStatic = muStatic * r.Normal
	r.Kinetic = muKinetic * r.Normal
	r.Liftoff = r.Normal < 0

	if r.Driving <= r.MaxStatic {
		r.State = Static
		r.Friction = r.Driving
		r.NetForce = 0
		r.Acceleration = 0
		return
	}

	r.State = moving
	r.Friction = r.Kinetic
	r.NetForce = r.Driving - r.Kinetic
	r.Acceleration = r.NetForce / mass
}
