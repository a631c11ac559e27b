package blocks

import (
	"fmt"

	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// delayPath is one independent (state, input, output) triple of a Delay.
// Paths on the same Delay block share nothing but their class tag.
type delayPath struct {
	state value.Value
	in    *port.Input
	out   *port.Output
}

// Delay is a clocked register: Evaluate republishes the latched state on
// every output; Step samples each input into state on the clock edge
// (§6). Paths are independent — Delay has no combinational dependency on
// anything, hence an empty SourceBlocks, which is what lets a Delay break
// a combinational cycle.
type Delay struct {
	*block.Base

	paths []*delayPath
}

// NewDelay creates a Delay with one path per entry of types, in order.
func NewDelay(path string, types []value.TypeDescriptor) *Delay {
	d := &Delay{Base: block.NewBase("Delay", path)}
	d.addPaths(d, types)
	d.SetOutputOwner(d)
	return d
}

func (d *Delay) addPaths(owner block.Block, types []value.TypeDescriptor) {
	for _, t := range types {
		in := d.AddInput(owner, t)
		out := d.AddOutput(t)
		d.paths = append(d.paths, &delayPath{state: value.Default(t), in: in, out: out})
	}
}

// CanEvaluate is always true: Evaluate always has meaningful work (copying
// state to output), even though it depends on nothing combinationally.
func (d *Delay) CanEvaluate() bool { return true }

// SourceBlocks is empty: a Delay's Evaluate reads only its own state.
func (d *Delay) SourceBlocks() []block.Block { return nil }

// Evaluate copies each path's latched state to its output.
func (d *Delay) Evaluate() {
	for _, p := range d.paths {
		value.Copy(&p.out.Value, p.state)
	}
}

// Step samples every path's input into its state cell and reports whether
// any path's value actually changed (§4.7).
func (d *Delay) Step() bool {
	changed := false
	for _, p := range d.paths {
		in := p.in.Value()
		if !value.Equal(p.state, in) {
			changed = true
		}
		value.Copy(&p.state, in)
	}
	return changed
}

// AsyncReset restores every path's state to its type's default.
func (d *Delay) AsyncReset() {
	for _, p := range d.paths {
		value.Copy(&p.state, value.Default(p.state.Type()))
	}
}

// InputName returns the diagnostic name of the path input at index,
// matching the original's GetInputPinName: "In" for a single-path Delay,
// "In<index>" otherwise.
func (d *Delay) InputName(index int) string {
	if len(d.paths) == 1 {
		return "In"
	}
	return fmt.Sprintf("In%d", index)
}

// PathCount returns the number of independent paths.
func (d *Delay) PathCount() int { return len(d.paths) }

// Path returns the input and output ports of path i, for the Translator's
// factory to wire up.
func (d *Delay) Path(i int) (*port.Input, *port.Output) {
	return d.paths[i].in, d.paths[i].out
}

// EnabledDelay is a Delay gated by an extra "Enable" input: Step is a
// no-op while Enable reads false (§6).
type EnabledDelay struct {
	*Delay

	enable *port.Input
}

// NewEnabledDelay creates an EnabledDelay with one path per entry of
// types, plus the leading Enable input.
func NewEnabledDelay(path string, types []value.TypeDescriptor) *EnabledDelay {
	e := &EnabledDelay{Delay: &Delay{Base: block.NewBase("EnabledDelay", path)}}
	e.enable = e.Base.AddInput(e, value.Bool)
	e.addPaths(e, types)
	e.SetOutputOwner(e)
	return e
}

// Enable returns the Enable input port.
func (e *EnabledDelay) Enable() *port.Input { return e.enable }

// Step samples every path only while Enable reads true.
func (e *EnabledDelay) Step() bool {
	if !bool(e.enable.Value().(value.BoolValue)) {
		return false
	}
	return e.Delay.Step()
}

// InputName delegates index 0 to "Enable" and every other index to the
// embedded Delay's own InputName, shifted by one. The original
// (enabled_delay_block::GetInputPinName) called itself instead of the
// base class here and recursed forever; this delegates explicitly.
func (e *EnabledDelay) InputName(index int) string {
	if index == 0 {
		return "Enable"
	}
	return e.Delay.InputName(index - 1)
}
