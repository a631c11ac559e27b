package translate

import (
	"github.com/go-logr/logr"
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/design"
)

// Result is the output of a successful Translate: the simulator blocks
// that were created (in the design's insertion order, with skipped blocks
// omitted) and the design-to-simulator mapping built along the way. The
// Planner is handed Blocks; Mapping is kept for the caller's own use.
type Result struct {
	Blocks  []block.Block
	Mapping map[*design.DesignBlock]block.Block
}

type pending struct {
	db      *design.DesignBlock
	factory Factory
	b       block.Block
}

// Translate walks d in construction order, building a simulator block for
// every design block whose class tag has a registered factory (§4.4 Stage
// 1), then resolves every created block's input connections against the
// resulting mapping (§4.4 Stage 2). A design block whose class tag is
// unregistered is warned about via log and skipped, never failing
// translation outright — only a later Planner pass can turn that into a
// fatal UnconnectedRequiredInput.
func Translate(d *design.Design, r *Registry, log logr.Logger) (Result, error) {
	mapping := make(map[*design.DesignBlock]block.Block, d.Len())
	pendings := make([]pending, 0, d.Len())

	for _, db := range d.Blocks() {
		factory, ok := r.Lookup(block.ClassTag(db.ClassTag))
		if !ok {
			log.Info(UnhandledBlockClass{Tag: db.ClassTag, Path: db.Path}.String())
			continue
		}

		b, err := factory.Create(db)
		if err != nil {
			return Result{}, err
		}

		mapping[db] = b
		pendings = append(pendings, pending{db: db, factory: factory, b: b})
	}

	lookup := func(db *design.DesignBlock) (block.Block, bool) {
		b, ok := mapping[db]
		return b, ok
	}

	blocks := make([]block.Block, 0, len(pendings))
	for _, p := range pendings {
		if err := p.factory.MapConnections(p.b, p.db, lookup); err != nil {
			return Result{}, err
		}
		blocks = append(blocks, p.b)
	}

	return Result{Blocks: blocks, Mapping: mapping}, nil
}
