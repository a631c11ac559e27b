// Package plan implements the Planner (C5): the three-stage pass that
// turns a translated block set into an executable Plan — a partition of
// the combinational subgraph into topologically-ordered components,
// components into tasks, and the flat list of steppable blocks — grounded
// on original_source/lib/oddf/src/simulator.cpp's constructor and
// RecursiveBuildExecutionOrder.
package plan

import "github.com/oddflow/oddflow/block"

// Plan is the immutable result of a successful Planner.Plan call: the
// Executor's only input. Tasks and Steppables are read-only for the
// remainder of the simulation's lifetime (§5).
type Plan struct {
	Tasks      []*Task
	Steppables []block.Steppable

	componentOf map[block.Block]*Component
}

// ComponentOf returns the component a block was assigned to, or false for
// a block outside the combinational subgraph entirely (e.g. a Constant).
// The Executor's dirty-propagation walk (§4.7) uses this to turn a
// Steppable's output subscribers into the components that need marking.
func (p *Plan) ComponentOf(b block.Block) (*Component, bool) {
	c, ok := p.componentOf[b]
	return c, ok
}

// Components returns every surviving component across all tasks, largest
// first — the same order Stage C walked them in to build tasks.
func (p *Plan) Components() []*Component {
	components := make([]*Component, 0)
	for _, t := range p.Tasks {
		components = append(components, t.Components...)
	}
	return components
}
