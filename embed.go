package jsonschema

import (
	_ "embed"
	"fmt"
)

//go:embed draft4.json
var draft4Bytes []byte

//go:embed draft6.json
var draft6Bytes []byte

//go:embed draft7.json
var draft7Bytes []byte

// metaSchemas decodes the three embedded meta-schema documents, keyed by
// their known, trailing-slash-sensitive URI (without a trailing "#").
func metaSchemas() (map[string]any, error) {
	out := make(map[string]any, 3)
	for uri, raw := range map[string][]byte{
		metaSchemaURI4: draft4Bytes,
		metaSchemaURI6: draft6Bytes,
		metaSchemaURI7: draft7Bytes,
	} {
		v, err := decodeJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("embedded meta-schema %s: %w", uri, err)
		}
		out[uri] = v
	}
	return out, nil
}
