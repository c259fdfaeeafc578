package ir

import "strconv"

// ValueKind discriminates the scalar payload of a primitive Node or a
// metadata attribute.
type ValueKind int

const (
	NullValue ValueKind = iota
	StringValue
	BoolValue
	IntValue
	FloatValue
)

// Value is a scalar: the payload of a primitive Node and of $key=value
// attributes. The zero Value is null.
type Value struct {
	Kind  ValueKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
}

func Null() Value              { return Value{Kind: NullValue} }
func String(v string) Value    { return Value{Kind: StringValue, Str: v} }
func Bool(v bool) Value        { return Value{Kind: BoolValue, Bool: v} }
func Int(v int64) Value        { return Value{Kind: IntValue, Int: v} }
func Float(v float64) Value    { return Value{Kind: FloatValue, Float: v} }

func (v Value) IsNull() bool { return v.Kind == NullValue }

// TypeName reports the primitive schema type a value naturally infers.
// Ints infer "number" directly while floats infer "float"; the float
// name is transient and collapses to "number" when a schema body is
// parsed back. This asymmetry is part of the wire behavior.
func (v Value) TypeName() string {
	switch v.Kind {
	case StringValue:
		return "string"
	case BoolValue:
		return "bool"
	case IntValue:
		return "number"
	case FloatValue:
		return "float"
	case NullValue:
		return "null"
	default:
		return "any"
	}
}

// Interface converts to the corresponding Go value (string, bool,
// int64, float64 or nil).
func (v Value) Interface() any {
	switch v.Kind {
	case StringValue:
		return v.Str
	case BoolValue:
		return v.Bool
	case IntValue:
		return v.Int
	case FloatValue:
		return v.Float
	default:
		return nil
	}
}

// Text renders the value as an unquoted ADF literal.
func (v Value) Text() string {
	switch v.Kind {
	case StringValue:
		return v.Str
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return "null"
	}
}
