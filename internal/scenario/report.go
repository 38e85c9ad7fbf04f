package scenario

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/forcelab/internal/mechanics"
)

type Role string

const (
	RoleForce     Role = "force"
	RoleResultant Role = "resultant"
	RoleWeight    Role = "weight"
	RoleComponent Role = "component"
	RoleNormal    Role = "normal"
	RoleFriction  Role = "friction"
)

// Arrow is one vector of a free-body diagram, already scaled to diagram units.
type Arrow struct {
	Label     string     `json:"label"`
	Role      Role       `json:"role"`
	Origin    mgl64.Vec2 `json:"origin"`
	Vector    mgl64.Vec2 `json:"vector"`
	Magnitude float64    `json:"magnitude"`
}

// Tip returns the arrow head position.
func (a Arrow) Tip() mgl64.Vec2 {
	return a.Origin.Add(a.Vector)
}

// Segment is a surface line drawn under the body.
type Segment struct {
	From mgl64.Vec2 `json:"from"`
	To   mgl64.Vec2 `json:"to"`
}

type Metric struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Report struct {
	Problem string                `json:"problem"`
	Title   string                `json:"title"`
	Mass    float64               `json:"mass"`
	State   mechanics.MotionState `json:"state,omitempty"`
	Verdict string                `json:"verdict"`
	Summary string                `json:"summary,omitempty"`
	Metrics []Metric              `json:"metrics"`
	Arrows  []Arrow               `json:"arrows"`
	Surface *Segment              `json:"surface,omitempty"`
	Body    mgl64.Vec2            `json:"body"`
	Result  any                   `json:"result"`
}

func (r *Report) add(key, label string, value float64, unit string) {
	r.Metrics = append(r.Metrics, Metric{Key: key, Label: label, Value: value, Unit: unit})
}

// Metric looks up a metric value by key.
func (r *Report) Metric(key string) (float64, bool) {
	for _, m := range r.Metrics {
		if m.Key == key {
			return m.Value, true
		}
	}
	return 0, false
}
