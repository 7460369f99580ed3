package tim

import "testing"

func TestLanguageParseCachesRendering(t *testing.T) {
	lang := NewLanguage(false, false, ColorModeTrueColor)

	first, err := lang.Parse("[bold]hi[/]", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := cacheKey{text: "[bold]hi[/]", optimize: false, appendReset: false}
	entry, ok := lang.cache[key]
	if !ok {
		t.Fatalf("expected a cache entry for the parsed text")
	}
	if entry.hasMacro {
		t.Errorf("expected hasMacro = false for a macro-free render")
	}

	second, err := lang.Parse("[bold]hi[/]", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("cached rendering changed: %q != %q", first, second)
	}
}

func TestLanguageParseReevaluatesMacrosOnCacheHit(t *testing.T) {
	lang := NewLanguage(false, false, ColorModeTrueColor)

	calls := 0
	if err := lang.Define("!count", func(_ []string, text string) string {
		calls++
		return text
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	if _, err := lang.Parse("[!count]x[/!count]", false, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := lang.Parse("[!count]x[/!count]", false, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("macro ran %d times across two Parse calls, want 2 (no stale cache for macro renders)", calls)
	}
}

func TestLanguageAliasAffectsParse(t *testing.T) {
	lang := NewLanguage(false, false, ColorModeTrueColor)
	lang.Alias("shout", "bold", true)

	got, err := lang.Parse("[shout]hi[/shout]", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x1b[1mhi\x1b[22m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLanguageDefaultAliasesRegistered(t *testing.T) {
	lang := NewLanguage(true, true, ColorModeTrueColor)

	aliases := lang.Aliases()
	for _, name := range []string{"error", "warning", "success", "info", "muted", "code", "heading"} {
		if _, ok := aliases[name]; !ok {
			t.Errorf("expected default alias %q to be registered", name)
		}
	}

	macros := lang.Macros()
	for _, name := range []string{"!upper", "!lower", "!title", "!strip"} {
		if _, ok := macros[name]; !ok {
			t.Errorf("expected default macro %q to be registered", name)
		}
	}
}

func TestLanguagePrintForwardsRenderedArgs(t *testing.T) {
	lang := NewLanguage(false, false, ColorModeTrueColor)

	var got []string
	err := lang.Print(func(rendered ...string) {
		got = append(got, rendered...)
	}, "[bold]a", "[italic]b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d rendered strings, want 2: %+v", len(got), got)
	}
	if got[0] != "\x1b[1ma\x1b[0m" {
		t.Errorf("got[0] = %q, want %q", got[0], "\x1b[1ma\x1b[0m")
	}
	if got[1] != "\x1b[3mb\x1b[0m" {
		t.Errorf("got[1] = %q, want %q", got[1], "\x1b[3mb\x1b[0m")
	}
}

func TestLanguagePrettifyMarkupRoundTrips(t *testing.T) {
	lang := NewLanguage(false, false, ColorModeTrueColor)
	out, err := lang.PrettifyMarkup("[bold]hi[/]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Errorf("expected non-empty prettified output")
	}
}
