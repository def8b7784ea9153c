package jsonschema

// Draft identifies which published JSON Schema vocabulary governs keyword
// availability, exclusiveMinimum/Maximum shape, $id spelling, and whether
// bare-boolean subschemas are permitted.
type Draft int

const (
	Draft4 Draft = 4
	Draft6 Draft = 6
	Draft7 Draft = 7
)

// Known meta-schema URIs, exact strings, trailing-slash-sensitive.
const (
	metaSchemaURI7 = "http://json-schema.org/draft-07/schema"
	metaSchemaURI6 = "http://json-schema.org/draft-06/schema"
	metaSchemaURI4 = "http://json-schema.org/draft-04/schema"
)

var metaSchemaURIToDraft = map[string]Draft{
	metaSchemaURI7: Draft7,
	metaSchemaURI6: Draft6,
	metaSchemaURI4: Draft4,
}

// keywordValidator is the single signature every keyword validator shares.
// s is the subschema fragment under the keyword; parent is the enclosing
// schema object (needed by e.g. additionalItems, which consults items).
type keywordValidator func(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq

// idKeyword returns the spelling used for the schema identifier keyword:
// "id" pre-Draft-6, "$id" from Draft 6 onward.
func (dr Draft) idKeyword() string {
	if dr == Draft4 {
		return "id"
	}
	return "$id"
}

// allowsBooleanSchema reports whether a bare true/false is a legal subschema
// under this draft.
func (dr Draft) allowsBooleanSchema() bool {
	return dr != Draft4
}

// number reports the draft as a plain integer (4, 6, or 7).
func (dr Draft) number() int {
	return int(dr)
}

// keywordTable returns the total keyword -> validator mapping active for dr.
// Unknown keys (i.e. keys with no entry here) are silently skipped by the
// dispatcher, per invariant 1.
func keywordTable(dr Draft) map[string]keywordValidator {
	t := map[string]keywordValidator{
		"type":       validateType,
		"enum":       validateEnum,
		"minimum":    validateMinimum,
		"maximum":    validateMaximum,
		"multipleOf": validateMultipleOf,
		"minLength":  validateMinLength,
		"maxLength":  validateMaxLength,
		"pattern":    validatePattern,

		"minItems":    validateMinItems,
		"maxItems":    validateMaxItems,
		"uniqueItems": validateUniqueItems,

		"minProperties": validateMinProperties,
		"maxProperties": validateMaxProperties,
		"required":      validateRequired,

		"properties":           validateProperties,
		"patternProperties":    validatePatternProperties,
		"additionalProperties": validateAdditionalProperties,

		"items":           validateItems,
		"additionalItems": validateAdditionalItems,

		"dependencies": validateDependencies,

		"allOf": validateAllOf,
		"anyOf": validateAnyOf,
		"oneOf": validateOneOf,
		"not":   validateNot,

		"format": validateFormat,

		"contentEncoding":  validateContentEncoding,
		"contentMediaType": validateContentMediaType,
	}
	if dr == Draft4 {
		t["exclusiveMinimum"] = validateExclusiveMinimumDraft4
		t["exclusiveMaximum"] = validateExclusiveMaximumDraft4
	} else {
		t["exclusiveMinimum"] = validateExclusiveMinimumIndependent
		t["exclusiveMaximum"] = validateExclusiveMaximumIndependent
		t["const"] = validateConst
		t["contains"] = validateContains
		t["propertyNames"] = validatePropertyNames
		t["if"] = validateIf
		// "then"/"else" are consumed by validateIf, not dispatched directly,
		// but are registered so the total-table invariant holds and so a
		// lone "then"/"else" without "if" is recognized (and does nothing)
		// rather than silently ignored as an unknown keyword.
		t["then"] = validateNoop
		t["else"] = validateNoop
	}
	return t
}

// formatTable returns the format-name -> predicate mapping active for dr.
func formatTable(dr Draft) map[string]formatChecker {
	t := map[string]formatChecker{
		"date-time":     formatDateTime,
		"date":          formatDate,
		"time":          formatTime,
		"email":         formatEmail,
		"hostname":      formatHostname,
		"ipv4":          formatIPv4,
		"ipv6":          formatIPv6,
		"uri":           formatURI,
		"uri-reference": formatURIReference,
		"uri-template":  formatURITemplate,
		"regex":         formatRegex,
	}
	if dr != Draft4 {
		t["json-pointer"] = formatJSONPointer
	}
	return t
}
