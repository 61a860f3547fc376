package models

import "fmt"

// Language identifies an output language.
type Language string

const (
	// LangEnglish selects the English columns of the mapping table.
	LangEnglish Language = "en"
	// LangFrench selects the French columns of the mapping table.
	LangFrench Language = "fr"
)

// Languages lists the supported languages in processing order.
var Languages = []Language{LangEnglish, LangFrench}

// ParseLanguage validates a language tag.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangEnglish, LangFrench:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language %q (must be en or fr)", s)
}

// FieldMapping pairs source columns with their public headers for one language.
// Sources[i] is renamed to Targets[i]; the pairing is positional.
type FieldMapping struct {
	// Language is the language the mapping was built for.
	Language Language
	// Sources are the original export column names, in output order.
	Sources []string
	// Targets are the renamed headers, aligned with Sources.
	Targets []string
}
