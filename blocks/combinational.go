package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/simerr"
	"github.com/oddflow/oddflow/value"
)

// Func is a pure combinational transfer function: given the current value
// of every input in order, it returns the new value of every output in
// order. It must not retain or mutate the slices it is given.
type Func func(inputs []value.Value) []value.Value

// Combinational wraps a user-supplied Func with a fixed input/output arity
// and type list — the escape hatch named in §1/§6 for arithmetic and other
// operators a front-end needs without this module knowing their semantics
// (Add, Not, bit-extract, and so on all reduce to one of these).
type Combinational struct {
	*block.Base

	fn      Func
	inputs  []*port.Input
	outputs []*port.Output

	inBuf []value.Value
}

// NewCombinational creates a Combinational with one input per entry of
// inTypes and one output per entry of outTypes, computed by fn.
func NewCombinational(path string, inTypes, outTypes []value.TypeDescriptor, fn Func) *Combinational {
	c := &Combinational{Base: block.NewBase("Combinational", path), fn: fn}

	c.inputs = make([]*port.Input, len(inTypes))
	for i, t := range inTypes {
		c.inputs[i] = c.AddInput(c, t)
	}
	c.outputs = make([]*port.Output, len(outTypes))
	for i, t := range outTypes {
		c.outputs[i] = c.AddOutput(t)
	}
	c.SetOutputOwner(c)

	c.inBuf = make([]value.Value, len(inTypes))

	return c
}

// Input returns the i-th input port.
func (c *Combinational) Input(i int) *port.Input { return c.inputs[i] }

// Output returns the i-th output port.
func (c *Combinational) Output(i int) *port.Output { return c.outputs[i] }

func (c *Combinational) CanEvaluate() bool { return true }

func (c *Combinational) SourceBlocks() []block.Block {
	return sourceBlocksOf(c.inputs...)
}

// Evaluate calls fn with the current input values and copies the results
// onto the outputs, panicking with an InternalError if fn returns the
// wrong number of values — a contract violation by the factory that built
// this block, not a design mistake a host could have caught earlier.
func (c *Combinational) Evaluate() {
	for i, in := range c.inputs {
		c.inBuf[i] = in.Value()
	}

	results := c.fn(c.inBuf)
	if len(results) != len(c.outputs) {
		panic(simerr.NewInternalError("%s: combinational function returned %d values, want %d", c.Path(), len(results), len(c.outputs)))
	}

	for i, out := range c.outputs {
		value.Copy(&out.Value, results[i])
	}
}
