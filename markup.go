package rich

import (
	"strings"

	"github.com/inkterm/tim/tim"
)

// richColorModeToTim maps the package's own ColorMode onto tim's, so markup
// rendering degrades exactly the way Style/Segment rendering does.
func richColorModeToTim(mode ColorMode) tim.ColorMode {
	switch mode {
	case ColorModeNone:
		return tim.ColorModeNone
	case ColorModeStandard:
		return tim.ColorModeStandard
	case ColorMode256:
		return tim.ColorMode256
	default:
		return tim.ColorModeTrueColor
	}
}

// printMarkupInternal renders m through the console's markup language and
// writes the result. Parse errors fall back to writing m verbatim, so a
// malformed tag never swallows the rest of the message.
func (c *Console) printMarkupInternal(m string) (n int, err error) {
	c.lang.SetColorMode(richColorModeToTim(c.colorMode))

	rendered, err := c.lang.Parse(m, false, true)
	if err != nil {
		return c.writer.Write([]byte(m))
	}
	return c.writer.Write([]byte(rendered))
}

// Language returns the console's markup language, for callers that want to
// define aliases or macros before printing.
//
// Example:
//
//	console.Language().Alias("danger", "bold 210", true)
//	console.PrintMarkup("[danger]stop[/danger]")
func (c *Console) Language() *tim.Language {
	return c.lang
}

// StripMarkup removes all markup tags from a string, returning the plain
// text they wrap. Macros are not applied; this only strips structure.
func StripMarkup(markup string) string {
	tokens, err := tim.TokenizeMarkup(markup)
	if err != nil {
		return markup
	}

	var out strings.Builder
	for _, t := range tokens {
		if t.IsPlain() {
			out.WriteString(t.Value)
		}
	}
	return out.String()
}

// EscapeMarkup returns s with every backslash and "[" escaped so the markup
// language renders s as literal text, regardless of what it contains.
//
// Example:
//
//	console.PrintMarkup(rich.EscapeMarkup("[not a tag]")) // prints: [not a tag]
func EscapeMarkup(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "[", `\[`)
	return s
}

// ValidateMarkup reports whether markup tokenizes successfully. Unlike a
// bracket-matching check, an unmatched "[/]" or an unknown alias-like tag is
// not itself an error: clearing nothing is a no-op, and an alias-like tag
// that isn't actually bound just renders as display-only text. The only
// tags that can fail to parse are malformed cursor positions, e.g.
// "[(1;2;3)]".
func ValidateMarkup(markup string) error {
	_, err := tim.TokenizeMarkup(markup)
	return err
}
