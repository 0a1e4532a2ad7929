package dekoda

import (
	"encoding/json"
	"strconv"
)

// Kind enumerates the JSON variants a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is an immutable JSON tree node: exactly one of the six variants holds.
// Values are built once, by a parser Driver or the exported constructors, and
// never mutated afterwards, so sharing them across goroutines needs no
// coordination.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value. The zero Value is also null.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64. JSON numbers carry no int/float distinction; integer
// interpretation is a decoder concern (dsl.Int).
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps an ordered sequence of Values.
func Array(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// Object wraps a property map. The map is copied so later writes by the caller
// cannot reach the Value.
func Object(members map[string]Value) Value {
	obj := make(map[string]Value, len(members))
	for k, v := range members {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports which variant holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload when the Value is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload when the Value is a Number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string payload when the Value is a String.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// Items returns the elements when the Value is an Array.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	items := make([]Value, len(v.arr))
	copy(items, v.arr)
	return items, true
}

// Member looks up a property when the Value is an Object.
func (v Value) Member(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	m, ok := v.obj[name]
	return m, ok
}

// Len reports the element count of an Array or member count of an Object,
// and 0 for every other variant.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// ValueFromAny converts the generic any-trees produced by encoding packages
// (bool, numeric kinds, json.Number, string, []any, map[string]any, nil) into
// a Value. The second result is false when the tree contains anything outside
// that set, such as non-string object keys. Drivers share this conversion so
// every input format funnels into the same Value shape.
func ValueFromAny(v any) (Value, bool) {
	switch t := v.(type) {
	case nil:
		return Null(), true
	case bool:
		return Bool(t), true
	case float64:
		return Number(t), true
	case int:
		return Number(float64(t)), true
	case int64:
		return Number(float64(t)), true
	case uint64:
		return Number(float64(t)), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return Value{}, false
		}
		return Number(f), true
	case string:
		return String(t), true
	case []any:
		arr := make([]Value, 0, len(t))
		for _, item := range t {
			cv, ok := ValueFromAny(item)
			if !ok {
				return Value{}, false
			}
			arr = append(arr, cv)
		}
		return Value{kind: KindArray, arr: arr}, true
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			cv, ok := ValueFromAny(item)
			if !ok {
				return Value{}, false
			}
			obj[k] = cv
		}
		return Value{kind: KindObject, obj: obj}, true
	case map[any]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, false
			}
			cv, ok := ValueFromAny(item)
			if !ok {
				return Value{}, false
			}
			obj[ks] = cv
		}
		return Value{kind: KindObject, obj: obj}, true
	default:
		return Value{}, false
	}
}
