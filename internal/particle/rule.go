// Package particle holds the per-kind update rules and spawn palettes.
package particle

import "terrarium/internal/core"

// Move is the single write a rule produces for one particle in one tick.
type Move struct {
	Dest int
	Cell core.Cell
}

// Rule computes where the particle at index goes next. Rules read only the
// pre-tick grid; the simulator owns the write target.
type Rule interface {
	Update(g *core.Grid, index int, rng core.Source) (Move, bool)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(g *core.Grid, index int, rng core.Source) (Move, bool)

// Update calls f.
func (f RuleFunc) Update(g *core.Grid, index int, rng core.Source) (Move, bool) {
	return f(g, index, rng)
}

var rules = map[core.Kind]Rule{}

// Register installs the rule for a kind. Empty is never dispatched and
// cannot be registered.
func Register(kind core.Kind, r Rule) {
	if kind == core.Empty || r == nil {
		return
	}
	rules[kind] = r
}

// Lookup returns the rule registered for kind.
func Lookup(kind core.Kind) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

func init() {
	Register(core.Sand, Sand{})
	Register(core.Stone, Stone{})
	Register(core.Water, Water{})
}
