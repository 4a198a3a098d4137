// Package sim advances a grid by one tick at a time.
package sim

import (
	"terrarium/internal/core"
	"terrarium/internal/particle"
)

// Stats summarises the most recent tick.
type Stats struct {
	Moved      int
	Rested     int
	Collisions int
}

// Simulator builds each next grid from the current one by dispatching every
// particle to the rule for its kind. It is not safe for concurrent use.
type Simulator struct {
	rng    core.Source
	frozen bool
	tick   uint64
	stats  Stats
	next   []core.Cell
}

// New returns a Simulator drawing randomness from rng.
func New(rng core.Source) *Simulator {
	return &Simulator{rng: rng}
}

// SetFrozen suspends or resumes ticking.
func (s *Simulator) SetFrozen(frozen bool) { s.frozen = frozen }

// Frozen reports whether ticking is suspended.
func (s *Simulator) Frozen() bool { return s.frozen }

// Tick returns the number of completed steps.
func (s *Simulator) Tick() uint64 { return s.tick }

// Stats returns counters from the last completed step.
func (s *Simulator) Stats() Stats { return s.stats }

// Step advances g by one tick and reports whether it ran.
//
// Cells are visited from the last index to the first. Every move lands on a
// strictly larger index, so each particle is read once from the pre-tick
// grid. When two particles pick the same destination, the one visited first
// keeps it and the other stays at its source, which no other particle can
// target because it was occupied before the tick.
func (s *Simulator) Step(g *core.Grid) bool {
	if s.frozen {
		return false
	}
	n := g.Len()
	if len(s.next) != n {
		s.next = make([]core.Cell, n)
	} else {
		clear(s.next)
	}

	var stats Stats
	for i := n - 1; i >= 0; i-- {
		c, err := g.CellAt(i)
		if err != nil || c.IsEmpty() {
			continue
		}
		rule, ok := particle.Lookup(c.Kind)
		if !ok {
			s.next[i] = c
			stats.Rested++
			continue
		}
		m, ok := rule.Update(g, i, s.rng)
		if !ok || m.Dest < 0 || m.Dest >= n {
			s.next[i] = c
			stats.Rested++
			continue
		}
		if m.Dest != i && !s.next[m.Dest].IsEmpty() {
			s.next[i] = c
			stats.Collisions++
			stats.Rested++
			continue
		}
		s.next[m.Dest] = m.Cell
		if m.Dest == i {
			stats.Rested++
		} else {
			stats.Moved++
		}
	}

	s.next = g.Swap(s.next)
	s.tick++
	s.stats = stats
	return true
}
