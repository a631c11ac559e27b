// Package block defines the Block contract the engine drives: the small
// closed capability set {Evaluate, Step, AsyncReset, SourceBlocks, Inputs,
// Outputs, ClassTag, Path}, realized as one required interface plus two
// optional ones a concrete block type may additionally satisfy.
package block

import "github.com/oddflow/oddflow/port"

// ClassTag identifies a block's kind to the translator's factory registry.
type ClassTag string

// Block is the interface every simulator-side block satisfies. A block
// that is purely a data source (e.g. Constant) returns false from
// CanEvaluate and an empty SourceBlocks; the engine never calls Evaluate on
// it but still includes it when resolving other blocks' inputs.
type Block interface {
	// ClassTag identifies the block's kind, e.g. for diagnostics.
	ClassTag() ClassTag

	// Path is the block's hierarchical name.
	Path() string

	// Inputs returns the block's input ports in stable, declared order.
	Inputs() []*port.Input

	// Outputs returns the block's output ports in stable, declared order.
	Outputs() []*port.Output

	// SourceBlocks returns the set of blocks this block's outputs
	// combinationally depend on, used by the Planner's topological sort.
	// A pure-sequential block (Delay, Memory) returns nil: its Evaluate,
	// if any, only republishes already-latched state.
	SourceBlocks() []Block

	// CanEvaluate reports whether Evaluate does meaningful work. Planner
	// Stage B only visits blocks for which this is true.
	CanEvaluate() bool

	// Evaluate recomputes all outputs from the blocks' current input
	// values. Precondition: every block this one depends on (via
	// SourceBlocks) has already been evaluated this Propagate pass.
	Evaluate()
}

// Steppable is implemented by blocks with clocked internal state (Delay,
// Memory, ...). The Executor calls Step on every Steppable once per clock.
type Steppable interface {
	Block

	// Step samples inputs into internal state on the clock edge and
	// reports whether any output-visible state actually changed. The
	// Executor, not the block, is responsible for marking the block's own
	// component and the components of its output subscribers outdated
	// when changed is true (dirty-on-change, §4.7); a block has no
	// reference back into engine-owned component state.
	Step() (changed bool)
}

// Resettable is implemented by blocks whose internal state can be
// asynchronously restored to its defaults.
type Resettable interface {
	Block

	// AsyncReset restores internal state to its type-derived default.
	AsyncReset()
}

// Simplifiable is implemented by a block that can fold or otherwise reduce
// itself with no cross-block effect (e.g. constant folding of an
// inlineable unary op). The Planner's Stage A calls Simplify on every
// block that implements it, before topological ordering begins.
type Simplifiable interface {
	Block

	Simplify()
}

// InputTolerant is implemented by a block that remains correct even when
// one of its inputs is left unconnected by the Translator. The Planner's
// required-input check consults ToleratesUnconnectedInput before raising
// UnconnectedRequiredInput for an unconnected input on a block that can
// evaluate.
type InputTolerant interface {
	Block

	ToleratesUnconnectedInput(portIndex int) bool
}
