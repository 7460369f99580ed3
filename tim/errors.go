package tim

import "errors"

// Error kinds returned by the markup engine. Wrap with fmt.Errorf("...: %w", ErrX)
// where extra context (the offending tag, position, etc.) is useful; callers can
// still discriminate with errors.Is.
var (
	// ErrInvalidMacroName is returned by Context.Define when name does not start with "!".
	ErrInvalidMacroName = errors.New("tim: macro name must start with \"!\"")

	// ErrInvalidCursorTag is returned by the markup tokenizer when a "(...)" tag
	// is not of the form "(y;x)".
	ErrInvalidCursorTag = errors.New("tim: cursor tag must have exactly one \";\"")

	// ErrUndefinedMacro is returned when rendering a MacroToken with no bound function.
	ErrUndefinedMacro = errors.New("tim: undefined macro")

	// ErrDanglingMacroClearer is returned when a "/!name" clearer matches no
	// currently active macro.
	ErrDanglingMacroClearer = errors.New("tim: dangling macro clearer")

	// ErrColorSyntax is returned by ParseColor when a spec matches none of the
	// accepted color forms.
	ErrColorSyntax = errors.New("tim: invalid color syntax")

	// ErrAnsiParse is returned by the ANSI tokenizer when an SGR part can't be
	// classified as a style, clearer, or color.
	ErrAnsiParse = errors.New("tim: unparseable ANSI sequence")
)
