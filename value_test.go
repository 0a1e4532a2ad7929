package dekoda_test

import (
	"encoding/json"
	"testing"

	dekoda "github.com/reoring/dekoda"
)

func TestValue_ConstructorsAndAccessors(t *testing.T) {
	if dekoda.Null().Kind() != dekoda.KindNull {
		t.Fatalf("null kind")
	}
	var zero dekoda.Value
	if zero.Kind() != dekoda.KindNull {
		t.Fatalf("zero Value must be null")
	}

	if b, ok := dekoda.Bool(true).AsBool(); !ok || !b {
		t.Fatalf("bool accessor")
	}
	if _, ok := dekoda.Bool(true).AsNumber(); ok {
		t.Fatalf("bool must not read as number")
	}

	if n, ok := dekoda.Number(1.5).AsNumber(); !ok || n != 1.5 {
		t.Fatalf("number accessor")
	}
	if s, ok := dekoda.String("hi").AsString(); !ok || s != "hi" {
		t.Fatalf("string accessor")
	}

	arr := dekoda.Array(dekoda.Number(1), dekoda.Number(2))
	items, ok := arr.Items()
	if !ok || len(items) != 2 || arr.Len() != 2 {
		t.Fatalf("array accessor: items=%v len=%d", items, arr.Len())
	}
	if _, ok := dekoda.String("x").Items(); ok {
		t.Fatalf("non-array must not yield items")
	}

	obj := dekoda.Object(map[string]dekoda.Value{"k": dekoda.Bool(false)})
	if m, ok := obj.Member("k"); !ok || m.Kind() != dekoda.KindBool {
		t.Fatalf("member accessor")
	}
	if _, ok := obj.Member("missing"); ok {
		t.Fatalf("missing member must report false")
	}
	if _, ok := dekoda.Number(1).Member("k"); ok {
		t.Fatalf("non-object must not yield members")
	}
}

func TestObject_CopiesTheMemberMap(t *testing.T) {
	members := map[string]dekoda.Value{"a": dekoda.Number(1)}
	obj := dekoda.Object(members)
	members["b"] = dekoda.Number(2)
	if _, ok := obj.Member("b"); ok {
		t.Fatalf("later writes to the source map must not reach the Value")
	}
}

func TestValueFromAny_JSONShapes(t *testing.T) {
	v, ok := dekoda.ValueFromAny(map[string]any{
		"name": "Jane",
		"tags": []any{"a", true, nil},
		"n":    json.Number("47"),
		"f":    1.25,
	})
	if !ok {
		t.Fatalf("conversion failed")
	}
	name, _ := v.Member("name")
	if s, isStr := name.AsString(); !isStr || s != "Jane" {
		t.Fatalf("name member")
	}
	tags, _ := v.Member("tags")
	items, isArr := tags.Items()
	if !isArr || len(items) != 3 || items[2].Kind() != dekoda.KindNull {
		t.Fatalf("tags member: %v", items)
	}
	n, _ := v.Member("n")
	if f, isNum := n.AsNumber(); !isNum || f != 47 {
		t.Fatalf("json.Number member")
	}
}

func TestValueFromAny_YAMLShapes(t *testing.T) {
	// yaml.v3 produces int for integers and map[string]any for string-keyed maps
	v, ok := dekoda.ValueFromAny(map[string]any{"age": int(30)})
	if !ok {
		t.Fatalf("conversion failed")
	}
	age, _ := v.Member("age")
	if f, isNum := age.AsNumber(); !isNum || f != 30 {
		t.Fatalf("int member")
	}
}

func TestValueFromAny_Rejections(t *testing.T) {
	if _, ok := dekoda.ValueFromAny(map[any]any{1: "x"}); ok {
		t.Fatalf("non-string keys must be rejected")
	}
	if _, ok := dekoda.ValueFromAny(struct{}{}); ok {
		t.Fatalf("foreign types must be rejected")
	}
	if _, ok := dekoda.ValueFromAny([]any{struct{}{}}); ok {
		t.Fatalf("rejection must propagate out of containers")
	}
	if _, ok := dekoda.ValueFromAny(json.Number("not-a-number")); ok {
		t.Fatalf("unparseable json.Number must be rejected")
	}
}
