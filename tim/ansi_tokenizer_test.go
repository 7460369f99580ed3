package tim

import "testing"

func TestTokenizeAnsiStyleAndClear(t *testing.T) {
	tokens, err := TokenizeAnsi("\x1b[1mhi\x1b[22m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Token{
		StyleToken("bold"),
		PlainToken("hi"),
		ClearToken("/bold"),
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if !tokens[i].Equal(want[i]) {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeAnsiStandardColor(t *testing.T) {
	tokens, err := TokenizeAnsi("\x1b[31mred\x1b[39m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || !tokens[0].IsColor() {
		t.Fatalf("expected [Color Plain Clear], got %+v", tokens)
	}
	if tokens[0].Color.IsBackground {
		t.Errorf("expected foreground color")
	}
}

func TestTokenizeAnsiTruecolor(t *testing.T) {
	tokens, err := TokenizeAnsi("\x1b[38;2;10;20;30mx\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || !tokens[0].IsColor() {
		t.Fatalf("expected leading Color token, got %+v", tokens)
	}
	rgb, ok := tokens[0].Color.Color.(RGBColor)
	if !ok {
		t.Fatalf("expected RGBColor, got %T", tokens[0].Color.Color)
	}
	if rgb != (RGBColor{R: 10, G: 20, B: 30}) {
		t.Errorf("got %+v, want {10 20 30}", rgb)
	}
}

func TestTokenizeAnsi256Background(t *testing.T) {
	tokens, err := TokenizeAnsi("\x1b[48;5;201mx\x1b[0m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || !tokens[0].IsColor() {
		t.Fatalf("expected leading Color token, got %+v", tokens)
	}
	if !tokens[0].Color.IsBackground {
		t.Errorf("expected background color")
	}
	idx, ok := tokens[0].Color.Color.(ANSI256Color)
	if !ok || idx != 201 {
		t.Errorf("got %+v, want ANSI256Color(201)", tokens[0].Color.Color)
	}
}

func TestTokenizeAnsiHyperlink(t *testing.T) {
	text := "\x1b]8;;https://example.com\x1b\\label\x1b]8;;\x1b\\"
	tokens, err := TokenizeAnsi(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The empty-URI "ESC]8;;ESC\" terminator closes the link without
	// introducing a token of its own, so exactly two tokens come out:
	// Hyperlink(URI) followed by Plain(label).
	want := []Token{
		HyperlinkToken("https://example.com"),
		PlainToken("label"),
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if !tokens[i].Equal(want[i]) {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeAnsiCursorPosition(t *testing.T) {
	tokens, err := TokenizeAnsi("\x1b[3;4H")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || !tokens[0].IsCursor() {
		t.Fatalf("expected single Cursor token, got %+v", tokens)
	}
	if *tokens[0].Y != 3 || *tokens[0].X != 4 {
		t.Errorf("got (%d;%d), want (3;4)", *tokens[0].Y, *tokens[0].X)
	}
}

func TestTokenizeAnsiCursorMissingBothIsError(t *testing.T) {
	if _, err := TokenizeAnsi("\x1b[;H"); err == nil {
		t.Errorf("expected error for cursor position missing both coordinates")
	}
}

func TestTokenizeAnsiPlainPassthrough(t *testing.T) {
	tokens, err := TokenizeAnsi("just text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || !tokens[0].IsPlain() || tokens[0].Value != "just text" {
		t.Fatalf("got %+v", tokens)
	}
}
