// Package value implements the typed sample values carried on the wires of
// a dataflow design: the small closed set of scalar kinds a block's input or
// output port can hold, plus their default, equality, and copy operations.
package value

import "fmt"

// Kind identifies which of the closed set of scalar types a Value or
// TypeDescriptor represents.
type Kind int

// The supported scalar kinds. There is no kind for user-defined types: the
// core only ever needs to move these five around, never interpret them.
const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindFloat64
	KindDynFix
)

// String returns a human-readable name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindDynFix:
		return "dynfix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeDescriptor is the first-class, comparable description of a port's
// value type. For every Kind other than KindDynFix only Kind is meaningful;
// DynFix descriptors additionally carry sign/width/fraction. Two descriptors
// compare equal with ==, which is why this type holds no slices or maps.
type TypeDescriptor struct {
	Kind       Kind
	Signed     bool
	WordWidth  int
	Fractional int
}

// Bool, Int32, Int64 and Float64 are the canonical descriptors for the
// fixed-width scalar kinds.
var (
	Bool    = TypeDescriptor{Kind: KindBool}
	Int32   = TypeDescriptor{Kind: KindInt32}
	Int64   = TypeDescriptor{Kind: KindInt64}
	Float64 = TypeDescriptor{Kind: KindFloat64}
)

// DynFixType builds a TypeDescriptor for a dynamic fixed-point scalar,
// validating the width constraints: fractional bits must be non-negative,
// the word width must lie in 1..31 (one data word), and in particular an
// address-shaped type (fractional == 0) must have a word width below 32
// bits so it fits in a plain int.
func DynFixType(signed bool, wordWidth, fractional int) TypeDescriptor {
	if fractional < 0 {
		panic("value: DynFix fractional bits must not be negative")
	}
	if fractional == 0 && wordWidth >= 32 {
		panic("value: DynFix address-shaped type (fractional=0) must have word width < 32")
	}
	if wordWidth <= 0 {
		panic("value: DynFix word width must be positive")
	}
	if wordWidth > 31 {
		panic("value: DynFix word width must not exceed 31")
	}

	return TypeDescriptor{
		Kind:       KindDynFix,
		Signed:     signed,
		WordWidth:  wordWidth,
		Fractional: fractional,
	}
}

// Value is a sample on a wire: the runtime payload that flows between an
// Output port and the Input ports it drives. It is a closed sum over the
// five kinds above, implemented as an interface with an unexported marker
// method so no type outside this package can satisfy it.
type Value interface {
	// Type returns the value's TypeDescriptor.
	Type() TypeDescriptor

	isValue()
}

// Default returns the zero value for a TypeDescriptor, i.e. the
// "default-from-type-descriptor" value every Output port holds immediately
// after construction (invariant I4).
func Default(t TypeDescriptor) Value {
	switch t.Kind {
	case KindBool:
		return BoolValue(false)
	case KindInt32:
		return Int32Value(0)
	case KindInt64:
		return Int64Value(0)
	case KindFloat64:
		return Float64Value(0)
	case KindDynFix:
		return DynFix{descriptor: t}
	default:
		panic(fmt.Sprintf("value: Default: unknown kind %v", t.Kind))
	}
}

// Equal reports whether a and b are structurally equal. Values of different
// kinds, or DynFix values with different descriptors, are never equal.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case BoolValue:
		return av == b.(BoolValue)
	case Int32Value:
		return av == b.(Int32Value)
	case Int64Value:
		return av == b.(Int64Value)
	case Float64Value:
		return av == b.(Float64Value)
	case DynFix:
		return av.equal(b.(DynFix))
	default:
		panic(fmt.Sprintf("value: Equal: unknown value type %T", a))
	}
}

// Copy copies src into *dst in place, the way a Delay or Memory block
// samples an input into an internal state cell without extra allocation.
func Copy(dst *Value, src Value) {
	*dst = src
}
