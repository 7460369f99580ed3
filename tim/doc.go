// Package tim implements Terminal Inline Markup: a bracket-tag markup
// language that compiles to ANSI escape sequences and back.
//
// Markup source looks like:
//
//	[bold 210]Error:[/] something went wrong
//	[~https://example.com]a link[/]
//
// The core pipeline is tokenize -> (optionally optimize) -> emit:
//
//	tokens, err := tim.TokenizeMarkup("[bold]hi[/]")
//	rendered, err := tim.ParseTokens(tokens, false, tim.NewContext(), true, tim.ColorModeTrueColor)
//
// Most callers instead want a Language, which binds a Context (the mutable
// alias/macro bindings) to the pipeline and caches parse results:
//
//	lang := tim.NewLanguage(true, true, tim.ColorModeTrueColor)
//	lang.Alias("heading", "bold 141", true)
//	out, err := lang.Parse("[heading]Report[/]", false, true)
//
// TokenizeAnsi runs the pipeline in reverse, turning already-rendered ANSI
// text back into a Token stream; GetMarkup and TokensToMarkup build on that
// to decompile rendered text back into TIM source.
package tim
