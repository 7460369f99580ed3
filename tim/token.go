package tim

import (
	"strconv"
	"strings"
)

// Kind is the tag of a Token's variant (spec §3).
type Kind int

const (
	KindPlain Kind = iota
	KindStyle
	KindColor
	KindClear
	KindAlias
	KindMacro
	KindCursor
	KindHyperlink
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindStyle:
		return "Style"
	case KindColor:
		return "Color"
	case KindClear:
		return "Clear"
	case KindAlias:
		return "Alias"
	case KindMacro:
		return "Macro"
	case KindCursor:
		return "Cursor"
	case KindHyperlink:
		return "Hyperlink"
	default:
		return "Unknown"
	}
}

// Token is a single markup atom: a tagged union over the eight variants
// named in spec §3. Only the fields relevant to Kind are populated; the
// Go type is a single struct (rather than an interface + 8 concrete types)
// so dispatch stays a plain switch on Kind, per the "no runtime type
// object required" design note (spec §9).
type Token struct {
	Kind Kind

	// Value carries: plain text (Plain), the style name (Style), the
	// clearer spelling including its leading "/" (Clear), the alias name
	// (Alias), the hyperlink URI (Hyperlink), the macro name including its
	// leading "!" (Macro), or the raw color spec as written (Color).
	Value string

	// Args holds macro call arguments (Macro only).
	Args []string

	// Color holds the resolved color (Color only).
	Color ColorValue

	// Y, X hold cursor coordinates (Cursor only); nil means "absent".
	Y, X *int
}

func PlainToken(text string) Token { return Token{Kind: KindPlain, Value: text} }
func StyleToken(name string) Token { return Token{Kind: KindStyle, Value: name} }
func ClearToken(tag string) Token  { return Token{Kind: KindClear, Value: tag} }
func AliasToken(name string) Token { return Token{Kind: KindAlias, Value: name} }

func ColorToken(spec string, value ColorValue) Token {
	return Token{Kind: KindColor, Value: spec, Color: value}
}

func MacroToken(name string, args []string) Token {
	return Token{Kind: KindMacro, Value: name, Args: args}
}

func CursorToken(y, x *int) Token {
	return Token{Kind: KindCursor, Y: y, X: x}
}

func HyperlinkToken(uri string) Token {
	return Token{Kind: KindHyperlink, Value: uri}
}

func (t Token) IsPlain() bool     { return t.Kind == KindPlain }
func (t Token) IsStyle() bool     { return t.Kind == KindStyle }
func (t Token) IsColor() bool     { return t.Kind == KindColor }
func (t Token) IsClear() bool     { return t.Kind == KindClear }
func (t Token) IsAlias() bool     { return t.Kind == KindAlias }
func (t Token) IsMacro() bool     { return t.Kind == KindMacro }
func (t Token) IsCursor() bool    { return t.Kind == KindCursor }
func (t Token) IsHyperlink() bool { return t.Kind == KindHyperlink }

// Markup returns the token's canonical bracket-tag spelling (spec §3): used
// for display, cache/optimizer equality, and TokensToMarkup.
func (t Token) Markup() string {
	switch t.Kind {
	case KindPlain, KindStyle, KindClear, KindAlias, KindColor:
		return t.Value
	case KindHyperlink:
		return "~" + t.Value
	case KindMacro:
		if len(t.Args) == 0 {
			return t.Value
		}
		return t.Value + ":" + strings.Join(t.Args, ":")
	case KindCursor:
		y, x := "", ""
		if t.Y != nil {
			y = strconv.Itoa(*t.Y)
		}
		if t.X != nil {
			x = strconv.Itoa(*t.X)
		}
		return "(" + y + ";" + x + ")"
	default:
		return ""
	}
}

// Targets reports whether t, a Clear token, cancels other (spec §3's
// "targets" relation). Always false when t is not a Clear.
func (t Token) Targets(other Token) bool {
	if t.Kind != KindClear {
		return false
	}

	if t.Value == "/" {
		return true
	}

	switch other.Kind {
	case KindStyle:
		return t.Value == "/"+other.Value
	case KindColor:
		if other.Color.IsBackground {
			return t.Value == "/bg"
		}
		return t.Value == "/fg"
	case KindHyperlink:
		return t.Value == "/~"
	case KindAlias, KindMacro:
		return t.Value == "/"+other.Value
	default:
		return false
	}
}

// Equal is structural token equality, used by the optimizer to detect
// already-applied set tags and by the emitter to match a clear against an
// active macro/style by value.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case KindMacro:
		if t.Value != other.Value || len(t.Args) != len(other.Args) {
			return false
		}
		for i := range t.Args {
			if t.Args[i] != other.Args[i] {
				return false
			}
		}
		return true
	case KindCursor:
		return intPtrEqual(t.Y, other.Y) && intPtrEqual(t.X, other.X)
	default:
		return t.Value == other.Value
	}
}

// PrettifiedMarkup returns a display wrapper around the token's own markup
// spelling, used by Language.PrettifyMarkup to syntax-highlight markup
// source: each tag kind gets a representative style so a dumped tag group
// reads legibly instead of as bare text.
func (t Token) PrettifiedMarkup() string {
	m := t.Markup()
	switch t.Kind {
	case KindStyle:
		return "[italic]" + m + "[/]"
	case KindClear:
		return "[dim]" + m + "[/]"
	case KindColor:
		return "[" + m + "]" + m + "[/]"
	case KindAlias:
		return "[208]" + m + "[/]"
	case KindMacro:
		return "[141]" + m + "[/]"
	case KindCursor:
		return "[210]" + m + "[/]"
	case KindHyperlink:
		return "[underline]" + m + "[/]"
	default:
		return m
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
