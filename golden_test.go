// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// toComparable walks a parsed document into plain maps and slices, so
// go-cmp can diff it without needing to reach into Table/Array's
// unexported provenance fields.
func toComparable(v any) any {
	switch x := v.(type) {
	case *Table:
		out := make(map[string]any, x.Len())
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out[k] = toComparable(val)
		}
		return out
	case *Array:
		vals := x.Values()
		out := make([]any, len(vals))
		for i, val := range vals {
			out[i] = toComparable(val)
		}
		return out
	default:
		return v
	}
}

func diffDocs(t *testing.T, in string, want map[string]any) {
	t.Helper()
	doc, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	got := toComparable(doc)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(%q) mismatch (-want +got):\n%s\n%s", in, diff, pretty.Sprint(got))
	}
}

func TestGoldenDocuments(t *testing.T) {
	t.Parallel()

	diffDocs(t, `
title = "TOML Example"

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00-08:00

[database]
enabled = true
ports = [ 8000, 8001, 8002 ]

[servers.alpha]
ip = "10.0.0.1"

[servers.beta]
ip = "10.0.0.2"
`, map[string]any{
		"title": "TOML Example",
		"owner": map[string]any{
			"name": "Tom",
			"dob": OffsetDateTime{
				LocalDateTime: LocalDateTime{
					Date: LocalDate{1979, 5, 27},
					Time: LocalTime{7, 32, 0, 0},
				},
				OffsetMinutes: -480,
			},
		},
		"database": map[string]any{
			"enabled": true,
			"ports":   []any{int64(8000), int64(8001), int64(8002)},
		},
		"servers": map[string]any{
			"alpha": map[string]any{"ip": "10.0.0.1"},
			"beta":  map[string]any{"ip": "10.0.0.2"},
		},
	})

	diffDocs(t, `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]

[[products]]
name = "Nail"
sku = 284758393
color = "gray"
`, map[string]any{
		"products": []any{
			map[string]any{"name": "Hammer", "sku": int64(738594937)},
			map[string]any{},
			map[string]any{"name": "Nail", "sku": int64(284758393), "color": "gray"},
		},
	})

	diffDocs(t, `
name = "fae"
[[fruit]]
  [fruit.physical]
    color = "red"
    shape = "round"

  [[fruit.variety]]
    name = "red delicious"

  [[fruit.variety]]
    name = "granny smith"
`, map[string]any{
		"name": "fae",
		"fruit": []any{
			map[string]any{
				"physical": map[string]any{"color": "red", "shape": "round"},
				"variety": []any{
					map[string]any{"name": "red delicious"},
					map[string]any{"name": "granny smith"},
				},
			},
		},
	})
}
