package gomap

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/arkadia-format/go-adf/ir"
)

// ErrUnsupported reports a Go value with no ADF mapping (channels,
// funcs, maps with non-string keys, ...).
var ErrUnsupported = errors.New("unsupported value")

// FromValue converts a Go value into a node with an inferred schema.
// It accepts scalars, slices, arrays, string-keyed maps and pointers
// to any of those; a *ir.Node passes through unchanged.
func FromValue(value any) (*ir.Node, error) {
	if n, ok := value.(*ir.Node); ok {
		return n, nil
	}
	if v, ok := scalarValue(value); ok {
		return primitiveNode(v), nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return primitiveNode(ir.Null()), nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(rv)
	case reflect.Map:
		return fromMap(rv)
	default:
		if v, ok := scalarValue(rv.Interface()); ok {
			return primitiveNode(v), nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, value)
	}
}

// scalarValue maps Go scalars onto ir.Value. All integer widths
// collapse to int64 and both float widths to float64; ints and floats
// alike infer the "number" primitive here.
func scalarValue(value any) (ir.Value, bool) {
	switch v := value.(type) {
	case nil:
		return ir.Null(), true
	case string:
		return ir.String(v), true
	case bool:
		return ir.Bool(v), true
	case int:
		return ir.Int(int64(v)), true
	case int8:
		return ir.Int(int64(v)), true
	case int16:
		return ir.Int(int64(v)), true
	case int32:
		return ir.Int(int64(v)), true
	case int64:
		return ir.Int(v), true
	case uint:
		return ir.Int(int64(v)), true
	case uint8:
		return ir.Int(int64(v)), true
	case uint16:
		return ir.Int(int64(v)), true
	case uint32:
		return ir.Int(int64(v)), true
	case uint64:
		return ir.Int(int64(v)), true
	case float32:
		return ir.Float(float64(v)), true
	case float64:
		return ir.Float(v), true
	case ir.Value:
		return v, true
	}
	return ir.Value{}, false
}

func primitiveNode(v ir.Value) *ir.Node {
	name := v.TypeName()
	// parse-side inference has no transient "float" name; every numeric
	// is just a number.
	if v.Kind == ir.FloatValue {
		name = "number"
	}
	node := ir.NewNode(ir.PrimitiveSchema(name))
	node.Value = v
	return node
}

func fromSlice(rv reflect.Value) (*ir.Node, error) {
	n := rv.Len()
	if n == 0 {
		node := ir.NewNode(ir.ListSchema(ir.PrimitiveSchema("any")))
		node.Elements = []*ir.Node{}
		return node, nil
	}

	elements := make([]*ir.Node, 0, n)
	for i := 0; i < n; i++ {
		child, err := FromValue(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		elements = append(elements, child)
	}

	var element *ir.Schema
	if elements[0].IsRecord() {
		// Union of all record fields across elements, first occurrence
		// fixing the position and type.
		element = ir.NewSchema(ir.Record, "record")
		for _, el := range elements {
			if !el.IsRecord() {
				continue
			}
			for _, f := range el.Schema.Fields() {
				if _, ok := element.Field(f.Name); !ok {
					element.AddField(f)
				}
			}
		}
	} else {
		element = elements[0].Schema
	}

	node := ir.NewNode(ir.ListSchema(element))
	node.Elements = elements
	return node, nil
}

func fromMap(rv reflect.Value) (*ir.Node, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map key %s", ErrUnsupported, rv.Type().Key())
	}

	// Go maps have no insertion order; sorted keys make the record
	// deterministic.
	byKey := map[string]reflect.Value{}
	for _, k := range rv.MapKeys() {
		byKey[k.String()] = rv.MapIndex(k)
	}

	schema := ir.NewSchema(ir.Record, "")
	node := ir.NewNode(schema)

	for _, key := range slices.Sorted(maps.Keys(byKey)) {
		child, err := FromValue(byKey[key].Interface())
		if err != nil {
			return nil, err
		}
		child.Schema.Name = key
		schema.AddField(child.Schema)
		node.SetField(key, child)
	}
	return node, nil
}
