package translate

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/design"
)

// FuncFactory adapts two plain functions into a Factory, sparing most
// built-in block kinds (§6) a dedicated factory type.
type FuncFactory struct {
	CreateFunc         func(db *design.DesignBlock) (block.Block, error)
	MapConnectionsFunc func(b block.Block, db *design.DesignBlock, lookup Lookup) error
}

func (f FuncFactory) Create(db *design.DesignBlock) (block.Block, error) {
	return f.CreateFunc(db)
}

func (f FuncFactory) MapConnections(b block.Block, db *design.DesignBlock, lookup Lookup) error {
	if f.MapConnectionsFunc == nil {
		return nil
	}
	return f.MapConnectionsFunc(b, db, lookup)
}
