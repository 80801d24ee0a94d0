package output

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/tonemill/tonemill/internal/colour"
)

// JSON renders the palette as a nested JSON document keyed by base
// colour name, with one object per kind mapping variant names to
// formatted values. Kinds that produced nothing are omitted entirely.
type JSON struct{}

// Name returns the serialiser name.
func (JSON) Name() string {
	return "json"
}

// Description returns the serialiser description.
func (JSON) Description() string {
	return "Nested JSON document keyed by base colour and variant kind"
}

// DefaultFileName returns the default output file name.
func (JSON) DefaultFileName() string {
	return "palette.json"
}

// Render serialises the entries. Ordered maps keep base colours in
// input order and variants in step order.
func (JSON) Render(entries []colour.Entry) ([]byte, error) {
	root := orderedmap.New[string, any]()

	for _, entry := range entries {
		node := orderedmap.New[string, any]()
		if entry.Hue != "" {
			node.Set("hue", entry.Hue)
		}

		for _, kind := range colour.Kinds {
			variants, ok := entry.ForKind(kind).Get()
			if !ok {
				continue
			}
			kindNode := orderedmap.New[string, string]()
			for _, v := range variants {
				kindNode.Set(v.Name, v.Value)
			}
			node.Set(string(kind), kindNode)
		}

		root.Set(entry.Name, node)
	}

	return json.MarshalIndent(root, "", "  ")
}
