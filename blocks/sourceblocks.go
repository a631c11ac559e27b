package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/port"
)

// sourceBlocksOf resolves the distinct set of blocks driving ins, in input
// order with duplicates removed, for use as a combinational block's
// SourceBlocks. An unconnected input contributes nothing — the Planner's
// required-input check is what catches that case, not the topological
// walk.
func sourceBlocksOf(ins ...*port.Input) []block.Block {
	var sources []block.Block
	seen := make(map[block.Block]bool)
	for _, in := range ins {
		driver := in.Driver()
		if driver == nil {
			continue
		}
		owner, ok := driver.Owner.(block.Block)
		if !ok || seen[owner] {
			continue
		}
		seen[owner] = true
		sources = append(sources, owner)
	}
	return sources
}
