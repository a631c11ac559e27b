package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// Decide is a combinational ternary mux: Decide(cond, ifTrue, ifFalse)
// copies ifTrue to its output when cond reads true, ifFalse otherwise
// (§6, supplemented from original_source's Decide(cond, a, b) usage in the
// counter example — b::Decide(reset, starting_value, ...)).
type Decide struct {
	*block.Base

	cond    *port.Input
	ifTrue  *port.Input
	ifFalse *port.Input
	out     *port.Output
}

// NewDecide creates a Decide over elemType-typed data inputs.
func NewDecide(path string, elemType value.TypeDescriptor) *Decide {
	d := &Decide{Base: block.NewBase("Decide", path)}
	d.cond = d.AddInput(d, value.Bool)
	d.ifTrue = d.AddInput(d, elemType)
	d.ifFalse = d.AddInput(d, elemType)
	d.out = d.AddOutput(elemType)
	d.SetOutputOwner(d)
	return d
}

// Cond, IfTrue, IfFalse and Out expose Decide's ports for the Translator's
// factory to wire up.
func (d *Decide) Cond() *port.Input    { return d.cond }
func (d *Decide) IfTrue() *port.Input  { return d.ifTrue }
func (d *Decide) IfFalse() *port.Input { return d.ifFalse }
func (d *Decide) Out() *port.Output    { return d.out }

func (d *Decide) CanEvaluate() bool { return true }

func (d *Decide) SourceBlocks() []block.Block {
	return sourceBlocksOf(d.cond, d.ifTrue, d.ifFalse)
}

// Evaluate copies ifTrue to the output when cond reads true, ifFalse
// otherwise.
func (d *Decide) Evaluate() {
	if bool(d.cond.Value().(value.BoolValue)) {
		value.Copy(&d.out.Value, d.ifTrue.Value())
		return
	}
	value.Copy(&d.out.Value, d.ifFalse.Value())
}
