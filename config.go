package jsonschema

import (
	"fmt"
)

// Config is the compiled, immutable result of CompileSchema: the selected
// draft, its keyword/format tables, the reference index built over the held
// schema, and the embedded meta-schemas. It is safe to share and validate
// concurrently from multiple goroutines.
type Config struct {
	schema      any
	draft       Draft
	descender   *descender
	translator  *Translator
}

// Option configures CompileSchema, mirroring the functional-options style
// used throughout this package's constructors.
type Option func(*options)

type options struct {
	draft    Draft
	hasDraft bool
	locale   string
}

// WithDraft pins the draft explicitly, overriding both the schema's
// "$schema" URI and the Draft 7 default.
func WithDraft(d Draft) Option {
	return func(o *options) {
		o.draft = d
		o.hasDraft = true
	}
}

// WithLocale selects the i18n locale used to render validation messages.
// Only "en" ships with this package; see SPEC_FULL.md's Open Questions.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// CompileSchema parses schema, determines its draft, builds the reference
// index, and returns an immutable Config ready to validate instances.
func CompileSchema(schema []byte, opts ...Option) (*Config, error) {
	o := &options{locale: "en"}
	for _, opt := range opts {
		opt(o)
	}

	decoded, err := decodeJSON(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaDecode, err)
	}

	if err := validateSchemaShape(decoded); err != nil {
		return nil, err
	}

	dr := o.draft
	if !o.hasDraft {
		dr = detectDraft(decoded)
	} else if dr != Draft4 && dr != Draft6 && dr != Draft7 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDraft, int(dr))
	}

	idx, _, err := buildRefIndex(decoded, dr)
	if err != nil {
		return nil, err
	}

	meta, err := metaSchemas()
	if err != nil {
		return nil, err
	}

	tr, err := newTranslator(o.locale)
	if err != nil {
		return nil, err
	}

	desc := &descender{
		draft:       dr,
		keywords:    keywordTable(dr),
		formats:     formatTable(dr),
		refIndex:    idx,
		metaSchemas: meta,
		translator:  tr,
	}

	return &Config{schema: decoded, draft: dr, descender: desc, translator: tr}, nil
}

func validateSchemaShape(v any) error {
	switch v.(type) {
	case map[string]any, bool:
		return nil
	default:
		return ErrInvalidSchemaType
	}
}

// detectDraft reads $schema at the root and matches it against the known
// meta-schema URI table, defaulting to Draft 7 when absent or unrecognized.
func detectDraft(schema any) Draft {
	obj, ok := schema.(map[string]any)
	if !ok {
		return Draft7
	}
	uri, ok := obj["$schema"].(string)
	if !ok {
		return Draft7
	}
	if dr, ok := metaSchemaURIToDraft[normalizeMetaURI(uri)]; ok {
		return dr
	}
	return Draft7
}

// normalizeMetaURI strips the fragment (the universal "#" suffix every draft
// in the wild, and the entire JSON Schema Test Suite, appends to "$schema")
// and any trailing slash, so the result matches the bare resource strings
// keyed in metaSchemaURIToDraft.
func normalizeMetaURI(uri string) string {
	resource, _, err := splitFragment(uri)
	if err != nil {
		resource = uri
	}
	for len(resource) > 0 && resource[len(resource)-1] == '/' {
		resource = resource[:len(resource)-1]
	}
	return resource
}

// DraftNumber reports the active draft as a plain integer (4, 6, or 7).
func (c *Config) DraftNumber() int {
	return c.draft.number()
}

// Translator returns the i18n translator selected at compile time (via
// WithLocale), for callers that want to render ValidationError.Localize
// themselves.
func (c *Config) Translator() *Translator {
	return c.translator
}

// Validate decodes instance and runs it through the recursive descent
// engine, returning a Result that exposes both the fast-fail IsValid() check
// and the lazy, collect-all Errors() stream.
func (c *Config) Validate(instance []byte) (*Result, error) {
	decoded, err := decodeJSON(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstanceDecode, err)
	}
	return c.ValidateValue(decoded), nil
}

// ValidateValue is like Validate but accepts an already-decoded instance
// tree (map[string]any / []any / string / jsonNumber / bool / nil), useful
// for callers that decoded the instance themselves or built it
// programmatically.
func (c *Config) ValidateValue(instance any) *Result {
	seq := c.descender.descend(instance, c.schema, nil, nil, nil, nil)
	return &Result{errs: seq}
}

// ValidateSchema validates the held schema against its draft's meta-schema.
// The meta-schema's URI is the base scope, so its internal references ("#",
// "#/definitions/...") resolve within the meta-schema itself.
func (c *Config) ValidateSchema() *Result {
	metaURI := metaURIForDraft(c.draft)
	meta := c.descender.metaSchemas[metaURI]
	seq := c.descender.descend(c.schema, meta, nil, nil, (*scopeNode)(nil).push(metaURI), nil)
	return &Result{errs: seq}
}

func metaURIForDraft(dr Draft) string {
	switch dr {
	case Draft4:
		return metaSchemaURI4
	case Draft6:
		return metaSchemaURI6
	default:
		return metaSchemaURI7
	}
}
