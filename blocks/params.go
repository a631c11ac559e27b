package blocks

import "github.com/oddflow/oddflow/value"

// ConstantParams is the design.DesignBlock.Params payload a "Constant"
// class tag expects: the literal values to publish, one per output, in
// order.
type ConstantParams struct {
	Values []value.Value
}

// MemoryParams is the Params payload a "Memory" class tag expects: the
// depth the port shapes alone cannot express (width and element/address
// types are already implied by the input/output count and TypeNames).
type MemoryParams struct {
	Depth int
}

// CombinationalParams is the Params payload a "Combinational" class tag
// expects: the transfer function a front-end's arithmetic/bitwise
// operator lowers to.
type CombinationalParams struct {
	Fn Func
}
