package tim

import "strings"

// Tokenizer produces a Token stream from source text; TokenizeMarkup and
// TokenizeAnsi are both valid Tokenizers.
type Tokenizer func(string) ([]Token, error)

// StyledRun is a maximal run of plain text plus the escape sequences active
// over it (spec §3/§4.7). Length is len(Plain); slicing always prepends
// Sequences so a sliced fragment still carries its full active style.
type StyledRun struct {
	Sequences string
	Plain     string
	Tokens    []Token
	Link      *string
}

func (r StyledRun) Len() int { return len(r.Plain) }

func (r StyledRun) String() string { return r.Sequences + r.Plain }

// Slice returns Sequences plus Plain[i:j].
func (r StyledRun) Slice(i, j int) string { return r.Sequences + r.Plain[i:j] }

// GroupStyles splits text into StyledRuns (spec §4.7), using tokenizer to
// produce the underlying token stream (TokenizeAnsi for already-rendered
// text, TokenizeMarkup for raw TIM source, as used by prettify markup
// highlighting).
func GroupStyles(text string, tokenizer Tokenizer, ctx *Context, mode ColorMode) ([]StyledRun, error) {
	if ctx == nil {
		ctx = NewContext()
	}

	toks, err := tokenizer(text)
	if err != nil {
		return nil, err
	}

	var runs []StyledRun
	var accum []Token
	var link *Token

	for _, token := range toks {
		if token.IsHyperlink() {
			l := token
			link = &l
		}

		if link != nil && token.IsClear() && token.Targets(*link) {
			link = nil
		}

		if token.IsPlain() {
			var linkValue *string
			if link != nil {
				v := link.Value
				linkValue = &v
			}

			runs = append(runs, StyledRun{
				Sequences: renderAccum(accum, ctx, mode),
				Plain:     token.Value,
				Tokens:    append(append([]Token(nil), accum...), token),
				Link:      linkValue,
			})

			kept := make([]Token, 0, len(accum))
			for _, tkn := range accum {
				if !tkn.IsCursor() {
					kept = append(kept, tkn)
				}
			}
			accum = kept
			continue
		}

		if token.IsClear() {
			kept := make([]Token, 0, len(accum))
			for _, tkn := range accum {
				if !token.Targets(tkn) {
					kept = append(kept, tkn)
				}
			}
			accum = kept

			if len(accum) > 0 && accum[len(accum)-1].Equal(token) {
				continue
			}
		}

		if len(accum) > 0 && allClear(accum) {
			accum = nil
		}

		accum = append(accum, token)
	}

	return runs, nil
}

// FirstStyledRun returns the first run GroupStyles would produce, or false
// if text contains no Plain token.
func FirstStyledRun(text string, tokenizer Tokenizer, ctx *Context, mode ColorMode) (StyledRun, bool, error) {
	runs, err := GroupStyles(text, tokenizer, ctx, mode)
	if err != nil || len(runs) == 0 {
		return StyledRun{}, false, err
	}
	return runs[0], true, nil
}

func allClear(tokens []Token) bool {
	for _, t := range tokens {
		if !t.IsClear() {
			return false
		}
	}
	return true
}

func renderAccum(accum []Token, ctx *Context, mode ColorMode) string {
	var sb strings.Builder
	for _, tkn := range accum {
		sb.WriteString(renderAccumToken(tkn, ctx, mode))
	}
	return sb.String()
}

// renderAccumToken renders a single accumulated token the way GroupStyles
// displays it: macros show their own markup spelling, hyperlinks contribute
// nothing directly (they only toggle Link), and an unrecognized clearer
// falls back to its markup spelling rather than failing.
func renderAccumToken(t Token, ctx *Context, mode ColorMode) string {
	switch t.Kind {
	case KindMacro:
		return t.Markup()
	case KindHyperlink:
		return ""
	case KindAlias:
		return resolveAlias(t.Value, ctx)
	case KindClear:
		code, ok := clearers[t.Value]
		if !ok {
			return t.Markup()
		}
		if code == "" {
			return ""
		}
		return "\x1b[" + code + "m"
	default:
		return renderSetToken(t, mode)
	}
}
