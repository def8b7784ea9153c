package jsonschema

import (
	"embed"

	i18n "github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// Translator wraps an initialized i18n bundle and a fixed locale, mirroring
// the teacher's GetI18n/NewLocalizer/Get pattern (i18n.go, result.go's
// EvaluationError.Localize). Only "en" ships with this package (see
// SPEC_FULL.md's Open Questions); additional locales are a pure data
// addition under locales/.
type Translator struct {
	localizer *i18n.Localizer
}

func newTranslator(locale string) (*Translator, error) {
	if locale == "" {
		locale = "en"
	}
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return &Translator{localizer: bundle.NewLocalizer(locale)}, nil
}

// Localize looks up code in the active locale, interpolating params; if no
// translation is registered it falls back to the given English template.
func (tr *Translator) Localize(code string, params map[string]any, fallback string) string {
	if tr == nil || tr.localizer == nil || code == "" {
		return fallback
	}
	msg := tr.localizer.Get(code, i18n.Vars(params))
	if msg == "" || msg == code {
		return fallback
	}
	return msg
}
