// Package translate implements the Translator / factory registry (C4): the
// mapping from a design block's class tag to the Factory that knows how to
// build its simulator-side block.Block, and the two-phase
// create-then-wire-connections translation this spec requires.
package translate

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/design"
)

// Lookup resolves a DesignBlock that drove some input, to the block.Block
// it was translated into. It returns ok=false for a DesignBlock whose
// factory was missing and was therefore skipped (§4.4, unknown class tag).
type Lookup func(db *design.DesignBlock) (b block.Block, ok bool)

// Factory builds simulator blocks for one class tag. Construction is
// two-phase: Create builds the block and its ports from the DesignBlock's
// shape alone; MapConnections is called afterwards, once every design
// block has been translated, to resolve each input's driver through the
// now-complete Lookup.
type Factory interface {
	// Create builds the simulator block for db. It must not attempt to
	// resolve driver references yet — other design blocks may not have
	// been translated.
	Create(db *design.DesignBlock) (block.Block, error)

	// MapConnections resolves b's inputs using lookup, now that every
	// design block has a (possibly absent) translation.
	MapConnections(b block.Block, db *design.DesignBlock, lookup Lookup) error
}

// Registry maps class tags to the Factory that builds them.
type Registry struct {
	factories map[block.ClassTag]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[block.ClassTag]Factory)}
}

// RegisterFactory installs factory for tag, replacing any prior entry.
// Always returns true, matching the spec's register_factory contract.
func (r *Registry) RegisterFactory(tag block.ClassTag, factory Factory) bool {
	r.factories[tag] = factory
	return true
}

// Lookup returns the factory registered for tag, if any.
func (r *Registry) Lookup(tag block.ClassTag) (Factory, bool) {
	f, ok := r.factories[tag]
	return f, ok
}
