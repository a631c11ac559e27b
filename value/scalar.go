package value

// BoolValue is the Value implementation for TypeDescriptor Bool.
type BoolValue bool

func (v BoolValue) Type() TypeDescriptor { return Bool }
func (v BoolValue) isValue()             {}

// Int32Value is the Value implementation for TypeDescriptor Int32.
type Int32Value int32

func (v Int32Value) Type() TypeDescriptor { return Int32 }
func (v Int32Value) isValue()             {}

// Int64Value is the Value implementation for TypeDescriptor Int64.
type Int64Value int64

func (v Int64Value) Type() TypeDescriptor { return Int64 }
func (v Int64Value) isValue()             {}

// Float64Value is the Value implementation for TypeDescriptor Float64.
type Float64Value float64

func (v Float64Value) Type() TypeDescriptor { return Float64 }
func (v Float64Value) isValue()             {}
