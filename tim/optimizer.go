package tim

// OptimizeTokens removes redundant set/clear tokens from a token stream
// while preserving its visual semantics (spec §4.5). State is kept across
// two slices: previous, the tags active as of the last Plain token, and
// currentGroup, the tags accumulated since.
func OptimizeTokens(tokens []Token) []Token {
	var previous []Token
	var currentGroup []Token
	var out []Token

	diffPrevious := func() []Token {
		applied := append([]Token(nil), previous...)
		var diffed []Token

		for _, tkn := range currentGroup {
			if tkn.IsClear() {
				anyTarget := false
				for _, tag := range applied {
					if tkn.Targets(tag) {
						anyTarget = true
						break
					}
				}
				if !anyTarget {
					continue
				}
			} else if tokenInSlice(tkn, previous) {
				continue
			}

			applied = append(applied, tkn)
			diffed = append(diffed, tkn)
		}

		return diffed
	}

	removeRedundantColor := func(newToken Token) {
		filtered := make([]Token, 0, len(currentGroup))
		for _, applied := range currentGroup {
			if applied.IsClear() && applied.Targets(newToken) {
				continue
			}
			if applied.IsColor() && applied.Color.IsBackground == newToken.Color.IsBackground {
				continue
			}
			filtered = append(filtered, applied)
		}
		currentGroup = filtered
	}

	for _, t := range tokens {
		switch {
		case t.IsPlain():
			out = append(out, diffPrevious()...)
			out = append(out, t)
			previous = append([]Token(nil), currentGroup...)

		case t.IsColor():
			removeRedundantColor(t)

			exists := false
			for _, applied := range currentGroup {
				if applied.Markup() == t.Markup() {
					exists = true
					break
				}
			}
			if !exists {
				currentGroup = append(currentGroup, t)
			}

		case t.IsStyle():
			exists := false
			for _, tag := range currentGroup {
				if t.Equal(tag) {
					exists = true
					break
				}
			}
			if !exists {
				currentGroup = append(currentGroup, t)
			}

		case t.IsClear():
			applied := false
			kept := make([]Token, 0, len(currentGroup))
			for _, tag := range currentGroup {
				if t.Targets(tag) || t.Equal(tag) {
					applied = true
					continue
				}
				kept = append(kept, tag)
			}
			currentGroup = kept

			if !applied {
				continue
			}
			currentGroup = append(currentGroup, t)

		default:
			currentGroup = append(currentGroup, t)
		}
	}

	out = append(out, diffPrevious()...)

	return out
}

func tokenInSlice(t Token, list []Token) bool {
	for _, o := range list {
		if t.Equal(o) {
			return true
		}
	}
	return false
}
