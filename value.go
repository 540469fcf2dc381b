package prism

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindInvalid marks the zero Value.
	KindInvalid Kind = iota
	// KindInt holds a signed integer.
	KindInt
	// KindUint holds an unsigned integer.
	KindUint
	// KindFloat holds a float64.
	KindFloat
	// KindString holds a string.
	KindString
	// KindBool holds a bool.
	KindBool
	// KindPointer holds an opaque pointer-sized handle.
	KindPointer
	// KindLevel holds a Level.
	KindLevel
	// KindLocation holds a Location.
	KindLocation
)

// String returns the lowercase name of a Kind, matching the notation used
// when a conversion verb rejects an argument (e.g. %!d(string=x)).
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindPointer:
		return "pointer"
	case KindLevel:
		return "level"
	case KindLocation:
		return "location"
	default:
		return "invalid"
	}
}

// Value is a tagged loggable argument. The engine's conversion verbs consume
// Values from an Args cursor; each verb declares which kinds it accepts.
type Value struct {
	kind Kind
	num  uint64
	str  string
	loc  Location
}

// IntValue wraps a signed integer.
func IntValue(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// UintValue wraps an unsigned integer.
func UintValue(v uint64) Value { return Value{kind: KindUint, num: v} }

// FloatValue wraps a float64.
func FloatValue(v float64) Value { return Value{kind: KindFloat, num: math.Float64bits(v)} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{kind: KindString, str: v} }

// BoolValue wraps a bool.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// PointerValue wraps a pointer-sized opaque handle.
func PointerValue(v uintptr) Value { return Value{kind: KindPointer, num: uint64(v)} }

// LevelValue wraps a Level.
func LevelValue(v Level) Value { return Value{kind: KindLevel, num: uint64(v)} }

// LocationValue wraps a Location.
func LocationValue(v Location) Value { return Value{kind: KindLocation, loc: v} }

// Kind reports the variant stored in the Value.
func (v Value) Kind() Kind { return v.kind }

func (v Value) int() int64     { return int64(v.num) }
func (v Value) uint() uint64   { return v.num }
func (v Value) float() float64 { return math.Float64frombits(v.num) }
func (v Value) bool() bool     { return v.num != 0 }
func (v Value) level() Level   { return Level(v.num) }

// text returns the canonical textual form of the Value, used by the %v verb
// and by the mismatch notation.
func (v Value) text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.int(), 10)
	case KindUint:
		return strconv.FormatUint(v.uint(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.float(), 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.bool())
	case KindPointer:
		return "0x" + strconv.FormatUint(v.num, 16)
	case KindLevel:
		return LevelString(v.level())
	case KindLocation:
		return v.loc.String()
	default:
		return "<invalid>"
	}
}

// valueOf converts an arbitrary argument into a tagged Value. Unrecognized
// types fall back to their fmt rendering as a string, so logging never
// rejects an argument outright.
func valueOf(arg any) Value {
	switch v := arg.(type) {
	case Value:
		return v
	case int:
		return IntValue(int64(v))
	case int8:
		return IntValue(int64(v))
	case int16:
		return IntValue(int64(v))
	case int32:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case uint:
		return UintValue(uint64(v))
	case uint8:
		return UintValue(uint64(v))
	case uint16:
		return UintValue(uint64(v))
	case uint32:
		return UintValue(uint64(v))
	case uint64:
		return UintValue(v)
	case uintptr:
		return PointerValue(v)
	case unsafe.Pointer:
		return PointerValue(uintptr(v))
	case float32:
		return FloatValue(float64(v))
	case float64:
		return FloatValue(v)
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case Level:
		return LevelValue(v)
	case Location:
		return LocationValue(v)
	case error:
		return StringValue(v.Error())
	case fmt.Stringer:
		return StringValue(v.String())
	case nil:
		return StringValue("<nil>")
	default:
		return StringValue(fmt.Sprint(v))
	}
}

// Args is the forward-only argument cursor shared between the header and body
// expansions of one render. If the header consumes N arguments the body
// expansion starts at argument N+1.
type Args struct {
	values []Value
	pos    int
}

// NewArgs builds an argument cursor from arbitrary values.
func NewArgs(args ...any) *Args {
	if len(args) == 0 {
		return &Args{}
	}
	values := make([]Value, len(args))
	for i, arg := range args {
		values[i] = valueOf(arg)
	}
	return &Args{values: values}
}

// Next consumes and returns the next argument. The second return is false
// once the cursor is exhausted.
func (a *Args) Next() (Value, bool) {
	if a == nil || a.pos >= len(a.values) {
		return Value{}, false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// Remaining reports how many arguments have not been consumed yet.
func (a *Args) Remaining() int {
	if a == nil {
		return 0
	}
	return len(a.values) - a.pos
}
