package tim

import "testing"

func TestContextDefineRejectsBadName(t *testing.T) {
	ctx := NewContext()
	if err := ctx.Define("upper", func(args []string, text string) string { return text }); err == nil {
		t.Errorf("expected error defining macro without leading '!'")
	}
	if err := ctx.Define("!upper", func(args []string, text string) string { return text }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok := ctx.Macro("!upper"); !ok {
		t.Errorf("expected !upper to be registered")
	}
}

func TestContextEvalAliasRecursive(t *testing.T) {
	ctx := NewContext()
	ctx.aliases["base"] = "bold 141"
	ctx.aliases["derived"] = "base italic"

	got := ctx.EvalAlias("derived underline")
	want := "bold 141 italic underline"
	if got != want {
		t.Errorf("EvalAlias() = %q, want %q", got, want)
	}
}

func TestContextAliasGeneratesUnsetter(t *testing.T) {
	ctx := NewContext()
	ctx.Alias("heading", "bold 141", true)

	if ctx.aliases["heading"] != "bold 141" {
		t.Fatalf("unexpected expansion: %q", ctx.aliases["heading"])
	}

	unset, ok := ctx.aliases["/heading"]
	if !ok {
		t.Fatalf("expected /heading unsetter to be generated")
	}
	if unset != "/bold /fg" {
		t.Errorf("unsetter = %q, want %q", unset, "/bold /fg")
	}
}

func TestContextAliasNoUnsetter(t *testing.T) {
	ctx := NewContext()
	ctx.Alias("heading", "bold", false)
	if _, ok := ctx.aliases["/heading"]; ok {
		t.Errorf("expected no unsetter to be generated")
	}
}

func TestContextAliasMultipleOrderDependency(t *testing.T) {
	ctx := NewContext()
	ctx.AliasMultiple([]AliasDef{
		{Name: "base", Value: "bold"},
		{Name: "derived", Value: "base italic"},
	}, true)

	if ctx.aliases["derived"] != "bold italic" {
		t.Errorf("derived = %q, want %q", ctx.aliases["derived"], "bold italic")
	}
}

func TestContextGenerateUnsetterForColorAlias(t *testing.T) {
	ctx := NewContext()
	ctx.Alias("danger", "@red bold", true)

	unset := ctx.aliases["/danger"]
	want := "/bg /bold"
	if unset != want {
		t.Errorf("unsetter = %q, want %q", unset, want)
	}
}

func TestContextAliasesAndMacrosReturnCopies(t *testing.T) {
	ctx := NewContext()
	ctx.Alias("heading", "bold", false)

	snap := ctx.Aliases()
	snap["heading"] = "mutated"
	if ctx.aliases["heading"] != "bold" {
		t.Errorf("Aliases() leaked a mutable reference to internal state")
	}
}
