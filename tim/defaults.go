package tim

import (
	"strings"
	"unicode"
)

// applyDefaultAliases seeds a freshly constructed Language with a small set
// of semantic aliases (the "default-alias initializer" external collaborator
// from spec §6). Names favor intent ("error", "warning") over raw styling so
// callers don't need to remember specific colors.
func applyDefaultAliases(l *Language) {
	l.AliasMultiple([]AliasDef{
		{Name: "error", Value: "210 bold"},
		{Name: "warning", Value: "214 bold"},
		{Name: "success", Value: "121 bold"},
		{Name: "info", Value: "117"},
		{Name: "muted", Value: "245 dim"},
		{Name: "code", Value: "235 @248"},
		{Name: "heading", Value: "bold underline"},
	}, true)
}

// applyDefaultMacros seeds a freshly constructed Language with a handful of
// text-transform macros (the "default-macro initializer" external
// collaborator from spec §6).
func applyDefaultMacros(l *Language) {
	_ = l.Define("!upper", func(_ []string, text string) string {
		return strings.ToUpper(text)
	})
	_ = l.Define("!lower", func(_ []string, text string) string {
		return strings.ToLower(text)
	})
	_ = l.Define("!title", func(_ []string, text string) string {
		return toTitleCase(text)
	})
	_ = l.Define("!strip", func(_ []string, text string) string {
		return strings.TrimSpace(text)
	})
}

func toTitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
