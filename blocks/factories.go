package blocks

import (
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/design"
	"github.com/oddflow/oddflow/simerr"
	"github.com/oddflow/oddflow/translate"
	"github.com/oddflow/oddflow/value"
)

// Class tags for every built-in block kind (§6), the keys a host passes to
// Registry.RegisterFactory.
const (
	TagConstant      block.ClassTag = "Constant"
	TagDelay         block.ClassTag = "Delay"
	TagEnabledDelay  block.ClassTag = "EnabledDelay"
	TagMemory        block.ClassTag = "Memory"
	TagTerminate     block.ClassTag = "Terminate"
	TagDecide        block.ClassTag = "Decide"
	TagLogger        block.ClassTag = "Logger"
	TagCombinational block.ClassTag = "Combinational"
)

// RegisterAll installs every built-in block kind's factory into r, the way
// a host wires up the core before calling translate.Translate.
func RegisterAll(r *translate.Registry) {
	r.RegisterFactory(TagConstant, translate.FuncFactory{CreateFunc: createConstant})
	r.RegisterFactory(TagDelay, translate.FuncFactory{CreateFunc: createDelay, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagEnabledDelay, translate.FuncFactory{CreateFunc: createEnabledDelay, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagMemory, translate.FuncFactory{CreateFunc: createMemory, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagTerminate, translate.FuncFactory{CreateFunc: createTerminate, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagDecide, translate.FuncFactory{CreateFunc: createDecide, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagLogger, translate.FuncFactory{CreateFunc: createLogger, MapConnectionsFunc: mapConnectionsByIndex})
	r.RegisterFactory(TagCombinational, translate.FuncFactory{CreateFunc: createCombinational, MapConnectionsFunc: mapConnectionsByIndex})
}

// mapConnectionsByIndex connects b's i-th input to the output db.Inputs[i]
// names, in order. Every built-in block adds its inputs and outputs in
// exactly the order its DesignBlock lists them, so this one implementation
// serves every built-in factory. A Driver that translated to nothing (an
// unregistered class tag, skipped with a warning) leaves the input
// unconnected, which the Planner's required-input check turns into a fatal
// error only if the block actually needs that input.
func mapConnectionsByIndex(b block.Block, db *design.DesignBlock, lookup translate.Lookup) error {
	ins := b.Inputs()
	for i, di := range db.Inputs {
		if di.Driver == nil {
			continue
		}
		driverBlock, ok := lookup(di.Driver)
		if !ok {
			continue
		}
		driverOut := driverBlock.Outputs()[di.DriverPort]
		if err := ins[i].ConnectTo(driverOut); err != nil {
			return simerr.NewDesignError("%s: connecting input %d: %v", db.Path, i, err)
		}
	}
	return nil
}

func outputTypes(db *design.DesignBlock) ([]value.TypeDescriptor, error) {
	types := make([]value.TypeDescriptor, len(db.Outputs))
	for i, o := range db.Outputs {
		t, err := ParseTypeName(o.TypeName)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func inputTypes(db *design.DesignBlock) ([]value.TypeDescriptor, error) {
	types := make([]value.TypeDescriptor, len(db.Inputs))
	for i, in := range db.Inputs {
		t, err := ParseTypeName(in.TypeName)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func createConstant(db *design.DesignBlock) (block.Block, error) {
	params, ok := db.Params.(ConstantParams)
	if !ok {
		return nil, simerr.NewDesignError("%s: Constant requires a blocks.ConstantParams payload", db.Path)
	}
	if len(params.Values) != len(db.Outputs) {
		return nil, simerr.NewDesignError("%s: Constant has %d outputs but %d values", db.Path, len(db.Outputs), len(params.Values))
	}
	return NewConstant(db.Path, params.Values...), nil
}

func createDelay(db *design.DesignBlock) (block.Block, error) {
	types, err := outputTypes(db)
	if err != nil {
		return nil, err
	}
	return NewDelay(db.Path, types), nil
}

func createEnabledDelay(db *design.DesignBlock) (block.Block, error) {
	types, err := outputTypes(db)
	if err != nil {
		return nil, err
	}
	return NewEnabledDelay(db.Path, types), nil
}

func createMemory(db *design.DesignBlock) (block.Block, error) {
	params, ok := db.Params.(MemoryParams)
	if !ok {
		return nil, simerr.NewDesignError("%s: Memory requires a blocks.MemoryParams payload", db.Path)
	}

	width := len(db.Outputs)
	if len(db.Inputs) != 4+width {
		return nil, simerr.NewDesignError("%s: Memory expects 4+width=%d inputs, got %d", db.Path, 4+width, len(db.Inputs))
	}

	addrType, err := ParseTypeName(db.Inputs[1].TypeName)
	if err != nil {
		return nil, err
	}
	elemType, err := ParseTypeName(db.Inputs[4].TypeName)
	if err != nil {
		return nil, err
	}

	return NewMemory(db.Path, params.Depth, width, elemType, addrType)
}

func createTerminate(db *design.DesignBlock) (block.Block, error) {
	return NewTerminate(db.Path), nil
}

func createDecide(db *design.DesignBlock) (block.Block, error) {
	if len(db.Inputs) != 3 {
		return nil, simerr.NewDesignError("%s: Decide expects exactly 3 inputs (cond, ifTrue, ifFalse), got %d", db.Path, len(db.Inputs))
	}
	elemType, err := ParseTypeName(db.Inputs[1].TypeName)
	if err != nil {
		return nil, err
	}
	return NewDecide(db.Path, elemType), nil
}

func createLogger(db *design.DesignBlock) (block.Block, error) {
	types, err := inputTypes(db)
	if err != nil {
		return nil, err
	}
	return NewLogger(db.Path, inputColumnNames(len(types)), types), nil
}

func createCombinational(db *design.DesignBlock) (block.Block, error) {
	params, ok := db.Params.(CombinationalParams)
	if !ok {
		return nil, simerr.NewDesignError("%s: Combinational requires a blocks.CombinationalParams payload", db.Path)
	}
	in, err := inputTypes(db)
	if err != nil {
		return nil, err
	}
	out, err := outputTypes(db)
	if err != nil {
		return nil, err
	}
	return NewCombinational(db.Path, in, out, params.Fn), nil
}
