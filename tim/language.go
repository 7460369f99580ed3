package tim

import (
	"fmt"
	"strings"
)

// cacheKey is the memoization key for Language.Parse: the same source text
// can render differently depending on the optimize and appendReset flags.
type cacheKey struct {
	text        string
	optimize    bool
	appendReset bool
}

type cacheEntry struct {
	tokens   []Token
	rendered string
	hasMacro bool
}

// Language binds a Context to the parsing pipeline and caches parse results
// (spec §4.6). It is the facade callers are expected to hold onto; the
// free functions (Parse, TokenizeMarkup, ...) are context-free primitives
// Language is built from.
type Language struct {
	ctx   *Context
	mode  ColorMode
	cache map[cacheKey]*cacheEntry
}

// NewLanguage constructs a Language. When defaultAliases/defaultMacros are
// set, the context is seeded via applyDefaultAliases/applyDefaultMacros.
func NewLanguage(defaultAliases, defaultMacros bool, mode ColorMode) *Language {
	l := &Language{
		ctx:   NewContext(),
		mode:  mode,
		cache: make(map[cacheKey]*cacheEntry),
	}

	if defaultAliases {
		applyDefaultAliases(l)
	}
	if defaultMacros {
		applyDefaultMacros(l)
	}

	return l
}

// Context returns the Language's underlying context, for callers that need
// direct access (e.g. to pass into GroupStyles with a non-default tokenizer).
func (l *Language) Context() *Context { return l.ctx }

// ColorMode returns the color mode used when rendering.
func (l *Language) ColorMode() ColorMode { return l.mode }

// SetColorMode changes the color mode used for subsequent parses. It does
// not invalidate the cache; callers who change color mode mid-stream should
// discard and recreate the Language if stale cached renders are unacceptable
// (the same tradeoff spec §5 calls out for alias/macro redefinition).
func (l *Language) SetColorMode(mode ColorMode) { l.mode = mode }

// Aliases returns a defensive copy of the currently defined aliases.
func (l *Language) Aliases() map[string]string { return l.ctx.Aliases() }

// Macros returns a defensive copy of the currently defined macros.
func (l *Language) Macros() map[string]MacroFunc { return l.ctx.Macros() }

// Define registers a macro; name must start with "!".
func (l *Language) Define(name string, fn MacroFunc) error {
	return l.ctx.Define(name, fn)
}

// Alias defines name as an expansion of value, optionally synthesizing a
// "/name" unsetter.
func (l *Language) Alias(name, value string, generateUnsetter bool) {
	l.ctx.Alias(name, value, generateUnsetter)
}

// AliasMultiple runs Alias for each definition, in order.
func (l *Language) AliasMultiple(defs []AliasDef, generateUnsetter bool) {
	l.ctx.AliasMultiple(defs, generateUnsetter)
}

// Parse renders text, consulting and refreshing the cache (spec §4.6): a
// cache hit with no macro tokens returns the cached string verbatim; a hit
// with macro tokens re-runs the emit loop (macros are foreign code and may
// have side effects or depend on external state, so their output can't be
// assumed stable across calls) and refreshes the cached string.
func (l *Language) Parse(text string, optimize, appendReset bool) (string, error) {
	key := cacheKey{text: text, optimize: optimize, appendReset: appendReset}

	if entry, ok := l.cache[key]; ok {
		if !entry.hasMacro {
			return entry.rendered, nil
		}

		rendered, err := ParseTokens(entry.tokens, optimize, l.ctx, appendReset, l.mode)
		if err != nil {
			return "", err
		}
		entry.rendered = rendered
		return rendered, nil
	}

	tokens, err := TokenizeMarkup(text)
	if err != nil {
		return "", err
	}

	rendered, err := ParseTokens(tokens, optimize, l.ctx, appendReset, l.mode)
	if err != nil {
		return "", err
	}

	hasMacro := false
	for _, t := range tokens {
		if t.IsMacro() {
			hasMacro = true
			break
		}
	}

	l.cache[key] = &cacheEntry{tokens: tokens, rendered: rendered, hasMacro: hasMacro}

	return rendered, nil
}

// GroupStyles splits text into StyledRuns using tokenizer and the
// Language's context.
func (l *Language) GroupStyles(text string, tokenizer Tokenizer) ([]StyledRun, error) {
	return GroupStyles(text, tokenizer, l.ctx, l.mode)
}

// PrettifyMarkup syntax-highlights markup source: each run's own active
// tags are wrapped around the tags' own display, then the result is
// re-parsed with optimization on.
func (l *Language) PrettifyMarkup(markup string) (string, error) {
	runs, err := GroupStyles(markup, TokenizeMarkup, l.ctx, l.mode)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	for _, span := range runs {
		if len(span.Tokens) == 0 {
			continue
		}

		tagTokens := span.Tokens[:len(span.Tokens)-1]
		pretty := make([]string, len(tagTokens))
		plain := make([]string, len(tagTokens))
		for i, tok := range tagTokens {
			pretty[i] = tok.PrettifiedMarkup()
			plain[i] = tok.Markup()
		}

		tagsStr := strings.Join(pretty, " ")
		markupStr := strings.Join(plain, " ")
		if len(tagsStr) > 0 && len(markupStr) > 0 {
			fmt.Fprintf(&output, "[%s][%s]", tagsStr, markupStr)
		}

		output.WriteString(span.Plain)
		output.WriteString("[/]")
	}

	return l.Parse(output.String(), true, true)
}

// Print parses each argument and forwards the rendered strings to sink, the
// terminal collaborator spec §6 names (4).
func (l *Language) Print(sink func(rendered ...string), args ...string) error {
	rendered := make([]string, len(args))
	for i, arg := range args {
		out, err := l.Parse(arg, false, true)
		if err != nil {
			return err
		}
		rendered[i] = out
	}
	sink(rendered...)
	return nil
}
