// Package port implements the typed Input/Output port model (C2): the
// endpoints blocks connect through, and the ConnectTo/Disconnect operations
// that maintain the bidirectional-consistency invariant between them.
//
// Ports are plain Go structs referenced by pointer; Go's garbage collector
// makes the Input<->Output cyclic back-references safe without the
// index-into-an-arena discipline a non-GC'd language would need for the
// same graph (see the design notes on cyclic ownership).
package port

import "github.com/oddflow/oddflow/value"

// Output is owned by exactly one block; it holds the block's current
// published value on that pin and the list of Input ports that read it.
type Output struct {
	// Index is the stable position of this port within its owning block's
	// output list.
	Index int

	Type  value.TypeDescriptor
	Value value.Value

	// Owner is the block.Block that owns this output. Typed as interface{}
	// for the same package-cycle reason as Input.Owner; a combinational
	// block's SourceBlocks implementation recovers it with a type assertion
	// to name its upstream dependency.
	Owner interface{}

	subscribers []*Input
}

// NewOutput creates an Output holding the default value for t (invariant
// I4: an Output's value is valid from construction onward).
func NewOutput(index int, t value.TypeDescriptor) *Output {
	return &Output{
		Index: index,
		Type:  t,
		Value: value.Default(t),
	}
}

// Subscribers returns the Input ports currently driven by this Output, in
// the order they connected. The returned slice must not be mutated by the
// caller.
func (o *Output) Subscribers() []*Input {
	return o.subscribers
}

// Input is owned by exactly one block; it holds at most one driver
// reference to an Output.
type Input struct {
	// Index is the stable position of this port within its owning block's
	// input list.
	Index int

	Type value.TypeDescriptor

	// Owner is the block.Block that owns this input. It is typed as
	// interface{} here rather than a concrete block.Block to avoid a
	// package cycle (block already imports port); engine-level code
	// recovers it with a type assertion when walking subscriber lists for
	// dirty propagation.
	Owner interface{}

	driver *Output
}

// NewInput creates an unconnected Input of the given type.
func NewInput(index int, t value.TypeDescriptor) *Input {
	return &Input{Index: index, Type: t}
}

// IsConnected reports whether the input currently has a driver.
func (i *Input) IsConnected() bool {
	return i.driver != nil
}

// Driver returns the Output driving this Input, or nil if unconnected.
func (i *Input) Driver() *Output {
	return i.driver
}

// Value returns the current value on the input, i.e. the value of its
// driving Output. Panics if the input is unconnected; callers that tolerate
// unconnected inputs must check IsConnected first.
func (i *Input) Value() value.Value {
	if i.driver == nil {
		panic("port: Value: input is not connected")
	}
	return i.driver.Value
}

// ConnectTo drives i from o, updating both sides to keep the subscriber
// list consistent (invariant I2). Fails if i is already connected (I1) or
// if the types don't match (I3).
func (i *Input) ConnectTo(o *Output) error {
	if i.driver != nil {
		return newInvalidConnection("input is already connected")
	}
	if i.Type != o.Type {
		return newInvalidConnection("type mismatch: input is %v, output is %v", i.Type, o.Type)
	}

	i.driver = o
	o.subscribers = append(o.subscribers, i)

	return nil
}

// Disconnect removes the connection between i and its driver, symmetrically
// updating the driver's subscriber list. Fails if i is not connected, or if
// the subscriber list was already inconsistent (an internal bug).
func (i *Input) Disconnect() error {
	if i.driver == nil {
		return newInvalidConnection("input is not connected")
	}

	o := i.driver
	idx := -1
	for k, sub := range o.subscribers {
		if sub == i {
			idx = k
			break
		}
	}
	if idx == -1 {
		return newInvalidConnection("internal error: output subscriber list missing this input")
	}

	o.subscribers = append(o.subscribers[:idx], o.subscribers[idx+1:]...)
	i.driver = nil

	return nil
}
