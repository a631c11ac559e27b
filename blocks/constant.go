package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/value"
)

// Constant publishes a fixed set of values on its outputs once, at
// construction. It never evaluates again and is not a Steppable (§6).
type Constant struct {
	*block.Base
}

// NewConstant creates a Constant with one output per value in values,
// each output already holding that value.
func NewConstant(path string, values ...value.Value) *Constant {
	c := &Constant{Base: block.NewBase("Constant", path)}
	for _, v := range values {
		out := c.AddOutput(v.Type())
		out.Value = v
	}
	c.SetOutputOwner(c)
	return c
}

// CanEvaluate is always false: a Constant's outputs are complete from
// construction and the Planner never needs to schedule it.
func (c *Constant) CanEvaluate() bool { return false }

// Evaluate is a no-op; the engine never calls it since CanEvaluate is false.
func (c *Constant) Evaluate() {}
