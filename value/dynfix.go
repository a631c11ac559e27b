package value

// dynFixWords is the inline capacity of a DynFix's data vector. Word widths
// are capped at 31 bits by construction (see DynFixType), so a single word
// is always enough; the extra capacity exists so the representation can
// grow without a design change, mirroring the original's small-vector
// storage without ever actually allocating one.
const dynFixWords = 4

// DynFix is a dynamic fixed-point scalar: a signed or unsigned integer of a
// runtime-chosen word width, with a runtime-chosen number of fractional
// bits. The raw two's-complement bit pattern is stored inline.
type DynFix struct {
	descriptor TypeDescriptor
	data       [dynFixWords]uint32
	len        int
}

func (v DynFix) Type() TypeDescriptor { return v.descriptor }
func (v DynFix) isValue()             {}

// NewDynFix builds a DynFix value of the given descriptor from a raw
// integer (the fixed-point bit pattern, not a scaled real number).
func NewDynFix(t TypeDescriptor, raw int64) DynFix {
	if t.Kind != KindDynFix {
		panic("value: NewDynFix: descriptor is not a DynFix type")
	}

	v := DynFix{descriptor: t, len: 1}
	v.data[0] = uint32(raw)

	return v
}

// Raw returns the value's bit pattern reinterpreted as an integer,
// sign-extending when the descriptor is signed. This is the "lazy
// conversion from ufix to int" the address-carrying ports rely on.
func (v DynFix) Raw() int64 {
	if v.len == 0 {
		return 0
	}

	word := int64(v.data[0])
	if v.descriptor.Signed {
		shift := uint(32 - v.descriptor.WordWidth)
		word = int64(int32(uint32(word)<<shift)) >> shift
	} else {
		mask := int64(1)<<uint(v.descriptor.WordWidth) - 1
		word &= mask
	}

	return word
}

// AsAddress returns the value interpreted as a non-negative array index; it
// panics if the descriptor is not address-shaped (fractional == 0). Callers
// (Memory's Step) are expected to range-check the result themselves.
func (v DynFix) AsAddress() int {
	if v.descriptor.Fractional != 0 {
		panic("value: AsAddress: descriptor is not address-shaped (fractional != 0)")
	}

	return int(v.Raw())
}

func (v DynFix) equal(o DynFix) bool {
	if v.descriptor != o.descriptor {
		return false
	}
	if v.len != o.len {
		return false
	}
	for i := 0; i < v.len; i++ {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
