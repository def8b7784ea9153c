package jsonschema

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kaptinlin/jsonpointer"
)

// ValidationError is one structured failure produced while validating an
// instance against a schema. It is not itself a Go error (it does not
// implement the error interface) because a validation run typically yields
// many; see Result for the aggregate, stream-oriented surface.
type ValidationError struct {
	Message string

	// Code and Params, when Code is non-empty, identify a translatable
	// message template and its interpolation arguments (mirroring the
	// teacher's EvaluationError Code/Params pair in result.go); Localize
	// renders through these, falling back to Message when Code is empty or
	// has no registered translation.
	Code   string
	Params map[string]any

	Instance     any
	Schema       any
	InstancePath []any
	SchemaPath   []any

	// Unwrap, when non-nil, is the underlying validation-time sentinel
	// (ErrUnresolvableRef, ErrRefCycle) this error wraps, for callers
	// that want to errors.Is against it.
	Unwrap error
}

// Localize renders the error's message through tr's i18n bundle when Code is
// set, falling back to the untranslated English Message otherwise. Callers
// typically obtain tr via Config.Translator.
func (e *ValidationError) Localize(tr *Translator) string {
	return tr.Localize(e.Code, e.Params, e.Message)
}

// InstancePointer renders InstancePath as a JSON Pointer string, e.g. "/a/b".
func (e *ValidationError) InstancePointer() string {
	return formatPointer(e.InstancePath)
}

// SchemaPointer renders SchemaPath as a JSON Pointer string.
func (e *ValidationError) SchemaPointer() string {
	return formatPointer(e.SchemaPath)
}

func formatPointer(path []any) string {
	if len(path) == 0 {
		return "/"
	}
	tokens := make([]string, len(path))
	for i, p := range path {
		tokens[i] = fmt.Sprint(p)
	}
	return jsonpointer.Format(tokens)
}

// String renders a human-readable, multi-line description of the error:
// the message, both paths, pretty-printed offending subtrees, and the
// offending schema node's "description" field (if any) as documentation.
func (e *ValidationError) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Message)
	fmt.Fprintf(&b, "  instance path: %s\n", e.InstancePointer())
	fmt.Fprintf(&b, "  schema path:   %s\n", e.SchemaPointer())
	if e.Instance != nil {
		if pretty, err := prettyJSON(e.Instance); err == nil {
			fmt.Fprintf(&b, "  instance:\n%s\n", indent(pretty))
		}
	}
	if e.Schema != nil {
		if pretty, err := prettyJSON(e.Schema); err == nil {
			fmt.Fprintf(&b, "  schema:\n%s\n", indent(pretty))
		}
		if obj, ok := e.Schema.(map[string]any); ok {
			if desc, ok := obj["description"].(string); ok && desc != "" {
				fmt.Fprintf(&b, "  Documentation for this node: %s\n", desc)
			}
		}
	}
	return b.String()
}

func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

// errSeq is the lazy error stream threaded through descent. Range-over-func:
// a consumer's yield returning false stops production immediately, which is
// how speculative validators (anyOf, oneOf, contains, not, if) implement
// fast-fail over their children without a separate sink type.
type errSeq = iter.Seq[*ValidationError]

// emptySeq yields nothing.
func emptySeq() errSeq {
	return func(yield func(*ValidationError) bool) {}
}

// oneErr yields exactly one error.
func oneErr(e *ValidationError) errSeq {
	return func(yield func(*ValidationError) bool) {
		yield(e)
	}
}

// concatSeq yields every error from each sequence in order, stopping early
// if the consumer's yield returns false.
func concatSeq(seqs ...errSeq) errSeq {
	return func(yield func(*ValidationError) bool) {
		for _, s := range seqs {
			if s == nil {
				continue
			}
			stopped := false
			s(func(e *ValidationError) bool {
				if !yield(e) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return
			}
		}
	}
}

// collect drains seq into a slice. Used by the collect-all policy (ToSlice,
// ToLocaleSlice); speculative validators use succeeds instead.
func collect(seq errSeq) []*ValidationError {
	var out []*ValidationError
	seq(func(e *ValidationError) bool {
		out = append(out, e)
		return true
	})
	return out
}

// succeeds reports whether seq yields zero errors, stopping at the first one
// (fast-fail) rather than draining the whole sequence.
func succeeds(seq errSeq) bool {
	ok := true
	seq(func(e *ValidationError) bool {
		ok = false
		return false
	})
	return ok
}

// Result is the outcome of one Config.Validate or Config.ValidateSchema call.
type Result struct {
	errs errSeq
}

// IsValid reports whether the validation produced no errors, short-circuiting
// on the first one.
func (r *Result) IsValid() bool {
	return succeeds(r.errs)
}

// Errors returns the lazy error stream. Ranging over it to exhaustion is the
// collect-all policy; breaking out of the range early is fast-fail.
func (r *Result) Errors() errSeq {
	return r.errs
}

// ToSlice drains Errors() into a slice (collect-all).
func (r *Result) ToSlice() []*ValidationError {
	return collect(r.errs)
}

// ToLocaleSlice drains Errors() and renders each through tr.Localize,
// falling back to the untranslated English message for errors whose Code
// has no registered translation (or carries none at all).
func (r *Result) ToLocaleSlice(tr *Translator) []string {
	errs := collect(r.errs)
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Localize(tr)
	}
	return out
}
