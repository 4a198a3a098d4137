package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form values such as kind names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value shown on a status panel.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a frontend renders next to the grid.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an integer parameter a frontend may step up or
// down. Bounds are inclusive.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Nudge returns the value one step from current in direction, clamped to
// the control's bounds.
func (c ParameterControl) Nudge(current, direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	return min(max(current+direction*step, c.Min), c.Max)
}

// ParameterControlsProvider exposes the adjustable parameters.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter updates integer parameters by key.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
