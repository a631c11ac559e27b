package block

import (
	"github.com/oddflow/oddflow/port"
	"github.com/oddflow/oddflow/value"
)

// Base is an embeddable helper that gives a concrete block type its class
// tag, path, and ordered port lists, the way delay_block/memory_block in
// the original embed a shared BlockBase. A concrete type embeds *Base,
// builds its ports through AddInput/AddOutput at construction time, and
// only needs to implement SourceBlocks, CanEvaluate and Evaluate (plus Step
// and AsyncReset when applicable) itself.
type Base struct {
	tag  ClassTag
	path string

	inputs  []*port.Input
	outputs []*port.Output
}

// NewBase creates a Base with the given class tag and hierarchical path and
// no ports yet.
func NewBase(tag ClassTag, path string) *Base {
	return &Base{tag: tag, path: path}
}

// ClassTag returns the block's class tag.
func (b *Base) ClassTag() ClassTag { return b.tag }

// Path returns the block's hierarchical path.
func (b *Base) Path() string { return b.path }

// Inputs returns the block's input ports in declaration order.
func (b *Base) Inputs() []*port.Input { return b.inputs }

// Outputs returns the block's output ports in declaration order.
func (b *Base) Outputs() []*port.Output { return b.outputs }

// SourceBlocks defaults to none; a block with real combinational
// dependencies (i.e. anything but a pure source or pure register) shadows
// this by declaring its own SourceBlocks method.
func (b *Base) SourceBlocks() []Block { return nil }

// AddInput appends a new input port of type t, owned by owner (the
// concrete block embedding this Base), and returns it for the constructor
// to wire up and retain.
func (b *Base) AddInput(owner Block, t value.TypeDescriptor) *port.Input {
	in := port.NewInput(len(b.inputs), t)
	in.Owner = owner
	b.inputs = append(b.inputs, in)
	return in
}

// AddOutput appends a new output port of type t and returns it, already
// holding its type's default value (I4).
//
// AddOutput does not take an owner parameter the way AddInput does; Owner
// is filled in by SetOutputOwner, which a constructor calls once after it
// has added all its outputs.
func (b *Base) AddOutput(t value.TypeDescriptor) *port.Output {
	out := port.NewOutput(len(b.outputs), t)
	b.outputs = append(b.outputs, out)
	return out
}

// SetOutputOwner backfills Owner on every output this Base has created so
// far. A concrete block constructor calls this once, after its own struct
// literal exists, so later SourceBlocks lookups via an Output.Owner type
// assertion succeed.
func (b *Base) SetOutputOwner(owner Block) {
	for _, out := range b.outputs {
		out.Owner = owner
	}
}
