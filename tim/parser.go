package tim

import (
	"fmt"
	"strconv"
	"strings"
)

// linkTemplate wraps a label in an OSC 8 hyperlink escape sequence.
const linkTemplate = "\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\"

// Parse tokenizes and renders TIM markup (spec §4.4 entry point). When
// appendReset is set and text doesn't already end in the reset tag, "[/]"
// is appended before tokenizing.
func Parse(text string, optimize bool, ctx *Context, appendReset bool, mode ColorMode) (string, error) {
	if ctx == nil {
		ctx = NewContext()
	}

	if appendReset && !strings.HasSuffix(text, "/]") {
		text += "[/]"
	}

	tokens, err := TokenizeMarkup(text)
	if err != nil {
		return "", err
	}

	return ParseTokens(tokens, optimize, ctx, appendReset, mode)
}

// ParseTokens renders a token stream to a terminal-ready string (spec §4.4):
// alias substitution, optional optimization, optional trailing reset, then
// an emit walk over segment/active-macro/link state.
func ParseTokens(tokens []Token, optimize bool, ctx *Context, appendReset bool, mode ColorMode) (string, error) {
	subbed, err := subAliases(tokens, ctx)
	if err != nil {
		return "", err
	}

	if optimize {
		subbed = OptimizeTokens(subbed)
	}

	if appendReset {
		subbed = append(subbed, ClearToken("/"))
	}

	var output strings.Builder
	var segment strings.Builder
	var activeMacros []Token
	var link *string

	flush := func() {
		if segment.Len() > 0 {
			output.WriteString(segment.String())
			segment.Reset()
		}
	}

	for _, t := range subbed {
		switch {
		case t.IsPlain():
			value, err := applyMacros(t.Value, activeMacros, ctx)
			if err != nil {
				return "", err
			}

			flush()
			if link != nil && mode != ColorModeNone {
				fmt.Fprintf(&output, linkTemplate, *link, value)
			} else {
				output.WriteString(value)
			}

		case t.IsHyperlink():
			uri := t.Value
			link = &uri

		case t.IsMacro():
			activeMacros = append(activeMacros, t)

		case t.IsClear():
			if t.Value == "/" || t.Value == "/~" {
				link = nil
			}

			found := false
			for i, m := range activeMacros {
				if t.Targets(m) {
					activeMacros = append(activeMacros[:i:i], activeMacros[i+1:]...)
					found = true
					break
				}
			}

			if found && t.Value != "/" {
				continue
			}

			if !found && strings.HasPrefix(t.Value, "/!") {
				return "", fmt.Errorf("%w: %q", ErrDanglingMacroClearer, t.Value)
			}

			code, ok := clearers[t.Value]
			if !ok {
				return "", fmt.Errorf("%w: unknown clearer %q", ErrAnsiParse, t.Value)
			}
			if code != "" && mode != ColorModeNone {
				segment.WriteString("\x1b[" + code + "m")
			}

		default:
			segment.WriteString(renderSetToken(t, mode))
		}
	}

	flush()

	return output.String(), nil
}

// renderSetToken renders a Style, Color, or Cursor token to its SGR/CSI
// fragment. ColorModeNone suppresses every escape sequence, not just color
// (the same contract Segment/Style rendering uses elsewhere in the module),
// so plain-text output stays byte-for-byte plain.
func renderSetToken(t Token, mode ColorMode) string {
	if mode == ColorModeNone {
		return ""
	}

	switch t.Kind {
	case KindStyle:
		return "\x1b[" + styles[t.Value] + "m"
	case KindColor:
		return t.Color.Sequence(mode)
	case KindCursor:
		y, x := "", ""
		if t.Y != nil {
			y = strconv.Itoa(*t.Y)
		}
		if t.X != nil {
			x = strconv.Itoa(*t.X)
		}
		return fmt.Sprintf("\x1b[%s;%sH", y, x)
	default:
		return ""
	}
}

// applyMacros runs each active macro, in order, over text (spec §4.4).
func applyMacros(text string, active []Token, ctx *Context) (string, error) {
	for _, m := range active {
		fn, ok := ctx.Macro(m.Value)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUndefinedMacro, m.Value)
		}
		text = fn(m.Args, text)
	}
	return text, nil
}

// isSubstituteCandidate reports whether t's name is bound as an alias,
// making it eligible for splicing (spec §4.4 step 1).
func isSubstituteCandidate(t Token, ctx *Context) bool {
	if !(t.IsAlias() || t.IsClear() || t.IsMacro()) {
		return false
	}
	_, ok := ctx.aliases[t.Value]
	return ok
}

// resolveAlias evaluates the alias bound to value, re-expanding through the
// current context (a second pass over an already-expanded body is a no-op
// in the common case, but picks up any out-of-band context mutation).
func resolveAlias(value string, ctx *Context) string {
	meaning, ok := ctx.aliases[value]
	if !ok {
		return value
	}
	return strings.TrimRight(ctx.EvalAlias(meaning), " ")
}

// subAliases splices alias/clear/macro tokens that resolve to a bound alias
// back into the stream as re-tokenized markup, and rewrites the deprecated
// "!link" macro shim into a Hyperlink token (spec §4.4 step 1).
func subAliases(tokens []Token, ctx *Context) ([]Token, error) {
	output := make([]Token, 0, len(tokens))

	for _, t := range tokens {
		if isSubstituteCandidate(t, ctx) {
			expansion := resolveAlias(t.Value, ctx)
			sub, err := TokenizeMarkup("[" + expansion + "]")
			if err != nil {
				return nil, err
			}
			output = append(output, sub...)
			continue
		}

		if t.IsMacro() && t.Value == "!link" {
			Warnings.Printf("deprecated: hyperlinks are no longer implemented as macros, prefer the ~{uri} syntax")
			output = append(output, HyperlinkToken(strings.Join(t.Args, ":")))
			continue
		}

		output = append(output, t)
	}

	return output, nil
}
