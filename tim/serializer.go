package tim

import "strings"

// TokensToMarkup serializes a token stream back into TIM source (the
// `tokens_to_markup` primitive from `original_source/pytermgui`): each run
// of non-Plain tokens since the last Plain token becomes one bracket group.
func TokensToMarkup(tokens []Token) string {
	var sb strings.Builder
	var tags []Token

	flushTags := func() {
		if len(tags) == 0 {
			return
		}
		sb.WriteByte('[')
		for i, tag := range tags {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tag.Markup())
		}
		sb.WriteByte(']')
		tags = nil
	}

	for _, t := range tokens {
		if t.IsPlain() {
			flushTags()
			sb.WriteString(t.Value)
			continue
		}
		tags = append(tags, t)
	}
	flushTags()

	return sb.String()
}

// GetMarkup decompiles an already-rendered ANSI string back into TIM source,
// context-free (`get_markup` in the original engine).
func GetMarkup(ansi string) (string, error) {
	tokens, err := TokenizeAnsi(ansi)
	if err != nil {
		return "", err
	}
	return TokensToMarkup(tokens), nil
}

// OptimizeMarkup runs the optimizer at the markup-source level: tokenize,
// optimize, re-serialize. Useful standalone (a `timfmt`-style formatter)
// without needing a Context.
func OptimizeMarkup(markup string) (string, error) {
	tokens, err := TokenizeMarkup(markup)
	if err != nil {
		return "", err
	}
	return TokensToMarkup(OptimizeTokens(tokens)), nil
}
