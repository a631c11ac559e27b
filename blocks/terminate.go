package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// Terminate is a pure sink: one boolean input, no outputs. Its only purpose
// is to keep an otherwise unobserved combinational sub-graph from being
// dropped — a design's final output has nowhere else to drive, and the
// Planner only schedules what some CanEvaluate block's SourceBlocks walk
// reaches, so a Terminate anchors that walk (§6).
type Terminate struct {
	*block.Base

	in *port.Input
}

// NewTerminate creates a Terminate with a single boolean input.
func NewTerminate(path string) *Terminate {
	t := &Terminate{Base: block.NewBase("Terminate", path)}
	t.in = t.AddInput(t, value.Bool)
	return t
}

// In returns the sink's single input port.
func (t *Terminate) In() *port.Input { return t.in }

// CanEvaluate is always true: Evaluate has meaningful work (observing the
// input) even though nothing downstream reads Terminate's outputs.
func (t *Terminate) CanEvaluate() bool { return true }

// SourceBlocks returns the block driving In, so the Planner's topological
// walk pulls it (and everything it transitively depends on) into the same
// component as this Terminate rather than leaving it unreachable.
func (t *Terminate) SourceBlocks() []block.Block {
	return sourceBlocksOf(t.in)
}

// Evaluate is a no-op: a Terminate has no outputs to recompute, it exists
// only so the block driving its input gets scheduled.
func (t *Terminate) Evaluate() {}
