package blocks

import (
	"strconv"
	"strings"

	"github.com/oddflow/oddflow/simerr"
	"github.com/oddflow/oddflow/value"
)

// ParseTypeName decodes the opaque TypeName a design.DesignInput or
// design.DesignOutput carries into a value.TypeDescriptor. Built-in
// blocks recognize the scalar kind names directly, and a
// "dynfix:<s|u>:<wordWidth>:<fractional>" form for dynamic fixed-point
// pins (e.g. "dynfix:u:10:0" for an unsigned 10-bit address). A front-end
// that only ever drives built-in blocks is free to use this convention;
// one that also drives its own factories may use any TypeName scheme its
// own factories understand instead.
func ParseTypeName(name string) (value.TypeDescriptor, error) {
	switch name {
	case "bool":
		return value.Bool, nil
	case "int32":
		return value.Int32, nil
	case "int64":
		return value.Int64, nil
	case "float64":
		return value.Float64, nil
	}

	if rest, ok := strings.CutPrefix(name, "dynfix:"); ok {
		return parseDynFixTypeName(rest)
	}

	return value.TypeDescriptor{}, simerr.NewDesignError("unrecognized type name %q", name)
}

func parseDynFixTypeName(rest string) (value.TypeDescriptor, error) {
	fields := strings.Split(rest, ":")
	if len(fields) != 3 {
		return value.TypeDescriptor{}, simerr.NewDesignError("malformed dynfix type name %q", rest)
	}

	var signed bool
	switch fields[0] {
	case "s":
		signed = true
	case "u":
		signed = false
	default:
		return value.TypeDescriptor{}, simerr.NewDesignError("dynfix sign must be 's' or 'u', got %q", fields[0])
	}

	wordWidth, err := strconv.Atoi(fields[1])
	if err != nil {
		return value.TypeDescriptor{}, simerr.NewDesignError("invalid dynfix word width %q", fields[1])
	}
	fractional, err := strconv.Atoi(fields[2])
	if err != nil {
		return value.TypeDescriptor{}, simerr.NewDesignError("invalid dynfix fractional bits %q", fields[2])
	}

	return buildDynFixType(signed, wordWidth, fractional)
}

// buildDynFixType recovers from value.DynFixType's panics on an invalid
// combination, turning them into a DesignError like every other
// construction-time mistake in this package.
func buildDynFixType(signed bool, wordWidth, fractional int) (t value.TypeDescriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = simerr.NewDesignError("%v", r)
		}
	}()
	return value.DynFixType(signed, wordWidth, fractional), nil
}
