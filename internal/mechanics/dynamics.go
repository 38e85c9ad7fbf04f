package mechanics

import "math"

// Dynamics is the outcome of applying a force system to a free body.
type Dynamics struct {
	Fx           float64 `json:"fx"`
	Fy           float64 `json:"fy"`
	Magnitude    float64 `json:"magnitude"`
	Direction    float64 `json:"direction"`
	Ax           float64 `json:"ax"`
	Ay           float64 `json:"ay"`
	Acceleration float64 `json:"acceleration"`
	Mass         float64 `json:"mass"`
}

// Analyze combines forces into a resultant and derives the acceleration of a body of the given mass.
func Analyze(mass float64, forces ForceSystem) (Dynamics, error) {
	fx, fy := NetForce(forces)
	mag, dir := Resultant(fx, fy)
	d := Dynamics{Fx: fx, Fy: fy, Magnitude: mag, Direction: dir, Mass: mass}

	ax, err := Acceleration(fx, mass)
	if err != nil {
		return d, err
	}
	ay, err := Acceleration(fy, mass)
	if err != nil {
		return d, err
	}
	d.Ax, d.Ay = ax, ay
	d.Acceleration = math.Sqrt(ax*ax + ay*ay)
	return d, nil
}
