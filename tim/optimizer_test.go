package tim

import "testing"

func equalTokenSlices(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestOptimizeTokensDedupsRepeatedStyle(t *testing.T) {
	in := []Token{StyleToken("bold"), StyleToken("bold"), PlainToken("hi")}
	want := []Token{StyleToken("bold"), PlainToken("hi")}

	got := OptimizeTokens(in)
	if !equalTokenSlices(got, want) {
		t.Errorf("OptimizeTokens() = %+v, want %+v", got, want)
	}
}

func TestOptimizeTokensDropsNoOpClear(t *testing.T) {
	in := []Token{ClearToken("/bold"), PlainToken("x")}
	want := []Token{PlainToken("x")}

	got := OptimizeTokens(in)
	if !equalTokenSlices(got, want) {
		t.Errorf("OptimizeTokens() = %+v, want %+v", got, want)
	}
}

func TestOptimizeTokensCollapsesSetThenClearBeforeAnyPlain(t *testing.T) {
	in := []Token{StyleToken("bold"), ClearToken("/bold"), PlainToken("x")}
	want := []Token{PlainToken("x")}

	got := OptimizeTokens(in)
	if !equalTokenSlices(got, want) {
		t.Errorf("OptimizeTokens() = %+v, want %+v", got, want)
	}
}

func TestOptimizeTokensPreservesEffectiveTransition(t *testing.T) {
	in := []Token{
		StyleToken("bold"),
		PlainToken("a"),
		ClearToken("/bold"),
		PlainToken("b"),
	}
	want := []Token{
		StyleToken("bold"),
		PlainToken("a"),
		ClearToken("/bold"),
		PlainToken("b"),
	}

	got := OptimizeTokens(in)
	if !equalTokenSlices(got, want) {
		t.Errorf("OptimizeTokens() = %+v, want %+v", got, want)
	}
}

func TestOptimizeTokensNewColorReplacesOldSameGround(t *testing.T) {
	red := ColorToken("red", ColorValue{Color: ANSIColor(Red), IsBackground: false})
	blue := ColorToken("blue", ColorValue{Color: ANSIColor(Blue), IsBackground: false})

	in := []Token{red, blue, PlainToken("x")}
	want := []Token{blue, PlainToken("x")}

	got := OptimizeTokens(in)
	if !equalTokenSlices(got, want) {
		t.Errorf("OptimizeTokens() = %+v, want %+v", got, want)
	}
}

func TestOptimizeTokensIsIdempotent(t *testing.T) {
	in := []Token{
		StyleToken("bold"),
		StyleToken("italic"),
		PlainToken("a"),
		ClearToken("/"),
		PlainToken("b"),
	}

	once := OptimizeTokens(in)
	twice := OptimizeTokens(once)

	if !equalTokenSlices(once, twice) {
		t.Errorf("optimizing twice changed output: once=%+v twice=%+v", once, twice)
	}
}
