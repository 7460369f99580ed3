package tim

import "testing"

func mustParse(t *testing.T, text string, optimize, appendReset bool, ctx *Context) string {
	t.Helper()
	if ctx == nil {
		ctx = NewContext()
	}
	out, err := Parse(text, optimize, ctx, appendReset, ColorModeTrueColor)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", text, err)
	}
	return out
}

func TestParseStyleAndClear(t *testing.T) {
	got := mustParse(t, "[bold]hi[/]", false, false, nil)
	want := "\x1b[1mhi\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// append_reset appends a trailing clear tag at the token level regardless of
// whether the source text already ends in "[/]" (it only controls whether
// parse additionally appends literal "[/]" text before tokenizing), so both
// of these render two consecutive reset sequences.
func TestParseAppendResetAddsTrailingClear(t *testing.T) {
	got := mustParse(t, "[bold]hi", false, true, nil)
	want := "\x1b[1mhi\x1b[0m\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseAppendResetDoublesWhenAlreadyPresent(t *testing.T) {
	got := mustParse(t, "[bold]hi[/]", false, true, nil)
	want := "\x1b[1mhi\x1b[0m\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseHyperlinkWrapsPlainText(t *testing.T) {
	got := mustParse(t, "[~https://example.com]click[/]", false, false, nil)
	want := "\x1b]8;;https://example.com\x1b\\click\x1b]8;;\x1b\\\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseCursorPosition(t *testing.T) {
	got := mustParse(t, "[(3;4)]", false, false, nil)
	want := "\x1b[3;4H"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseMacroTransformsPlainText(t *testing.T) {
	ctx := NewContext()
	if err := ctx.Define("!upper", func(args []string, text string) string {
		out := make([]byte, len(text))
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			out[i] = c
		}
		return string(out)
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	got := mustParse(t, "[!upper]hi[/!upper]", false, false, ctx)
	want := "HI"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseMacroClearerConsumedSilently(t *testing.T) {
	ctx := NewContext()
	if err := ctx.Define("!upper", func(args []string, text string) string { return text }); err != nil {
		t.Fatalf("Define: %v", err)
	}

	got := mustParse(t, "[!upper]a[/!upper]b", false, false, ctx)
	want := "ab"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseDanglingMacroClearerErrors(t *testing.T) {
	ctx := NewContext()
	if _, err := Parse("[/!upper]x", false, ctx, false, ColorModeTrueColor); err == nil {
		t.Errorf("expected error for dangling macro clearer")
	}
}

func TestParseAliasSubstitution(t *testing.T) {
	ctx := NewContext()
	ctx.Alias("heading", "bold", true)

	got := mustParse(t, "[heading]hi[/heading]", false, false, ctx)
	want := "\x1b[1mhi\x1b[22m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseUnknownClearerErrors(t *testing.T) {
	if _, err := Parse("[/not-a-real-tag]x", false, NewContext(), false, ColorModeTrueColor); err == nil {
		t.Errorf("expected error for unknown clearer")
	}
}

// ColorModeNone strips every escape sequence, not just color: style, clear,
// cursor, and hyperlink wrapping all disappear, leaving exactly the plain
// text a caller writing to a non-terminal wants.
func TestParseColorModeNoneStripsAllEscapes(t *testing.T) {
	got, err := Parse("[bold red]hi[/]", false, NewContext(), false, ColorModeNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}

	got, err = Parse("[~https://example.com]click[/]", false, NewContext(), false, ColorModeNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "click" {
		t.Errorf("got %q, want %q", got, "click")
	}

	got, err = Parse("[(3;4)]x", false, NewContext(), false, ColorModeNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "x" {
		t.Errorf("got %q, want %q", got, "x")
	}
}
