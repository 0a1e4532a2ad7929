package dekoda_test

import (
	"testing"

	dekoda "github.com/reoring/dekoda"
	d "github.com/reoring/dekoda/dsl"
)

var benchDoc = []byte(`{"payload":{"person":{"name":"Jane","age":47},"tags":[true,false,"nope",true]}}`)

func BenchmarkParseBytes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = dekoda.ParseBytes(benchDoc)
	}
}

func BenchmarkNavigateThenDecode(b *testing.B) {
	personDec := d.Decode2("name", d.String(), "age", d.Int(), func(name string, age int) [2]any {
		return [2]any{name, age}
	})
	parsed := dekoda.ParseBytes(benchDoc)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		located := dekoda.RunThrough(dekoda.At("payload", "person"), parsed)
		_ = dekoda.RunThrough(personDec, located)
	}
}

func BenchmarkArrayOfWithDrops(b *testing.B) {
	dec := d.ArrayOf(d.Bool())
	parsed := dekoda.ParseBytes(benchDoc)
	located := dekoda.RunThrough(dekoda.At("payload", "tags"), parsed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dekoda.RunThrough(dec, located)
	}
}
