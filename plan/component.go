package plan

import (
	"sync/atomic"

	"github.com/oddflow/oddflow/block"
	"github.com/rs/xid"
)

// Component is a maximal set of blocks with no combinational edge leaving
// it — a weakly-connected component of the design's combinational
// subgraph (§4.5 Stage B, Testable Property 4) — stored in a valid
// topological order for Evaluate (Testable Property 3).
//
// Component.id exists only for diagnostics (Report, error messages); the
// Planner and Executor both address components by pointer.
type Component struct {
	id xid.ID

	blocks   []block.Block
	outdated atomic.Bool
}

func newComponent() *Component {
	c := &Component{id: xid.New()}
	c.outdated.Store(true)
	return c
}

// reset empties the component so it can be handed back to the Planner's
// free-list, mirroring the original's reusableComponents recycling of
// emptied components rather than discarding and reallocating them.
func (c *Component) reset() {
	c.blocks = c.blocks[:0]
	c.outdated.Store(true)
}

// ID returns the component's diagnostic identifier.
func (c *Component) ID() xid.ID { return c.id }

// Blocks returns the component's blocks in topological evaluation order.
// The returned slice must not be mutated by the caller.
func (c *Component) Blocks() []block.Block { return c.blocks }

// Size returns the number of blocks in the component.
func (c *Component) Size() int { return len(c.blocks) }

// Outdated reports whether the component needs re-evaluation.
func (c *Component) Outdated() bool { return c.outdated.Load() }

// MarkOutdated sets the outdated flag. Safe to call concurrently with other
// MarkOutdated calls and with ClearIfOutdated (§5: monotonic OR under a
// plain atomic, never a mutex, on the Step hot path).
func (c *Component) MarkOutdated() { c.outdated.Store(true) }

// ClearIfOutdated atomically reads and clears the outdated flag, returning
// whether it was set. The Executor's Propagate phase uses this to decide,
// per component, whether to evaluate it this pass.
func (c *Component) ClearIfOutdated() bool {
	return c.outdated.CompareAndSwap(true, false)
}
