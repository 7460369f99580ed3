package tim

import (
	"fmt"
	"strings"
)

// MacroFunc is a markup macro binding. args are the colon-separated call
// arguments (e.g. `!pad:4` has args ["4"]); text is the plain text the
// macro is currently transforming.
type MacroFunc func(args []string, text string) string

// AliasDef is one entry of an ordered alias_multiple batch. Aliases are
// applied in slice order so one definition may reference an alias defined
// earlier in the same batch.
type AliasDef struct {
	Name  string
	Value string
}

// Context holds the mutable alias and macro bindings shared by a Language.
// Mutation is the sole writer's responsibility (spec §5): Context does not
// synchronize concurrent reads against writes.
type Context struct {
	aliases map[string]string
	macros  map[string]MacroFunc
}

// NewContext returns an empty Context with no aliases or macros defined.
func NewContext() *Context {
	return &Context{
		aliases: make(map[string]string),
		macros:  make(map[string]MacroFunc),
	}
}

// Aliases returns a defensive copy of the currently defined aliases.
func (c *Context) Aliases() map[string]string {
	out := make(map[string]string, len(c.aliases))
	for k, v := range c.aliases {
		out[k] = v
	}
	return out
}

// Macros returns a defensive copy of the currently defined macros.
func (c *Context) Macros() map[string]MacroFunc {
	out := make(map[string]MacroFunc, len(c.macros))
	for k, v := range c.macros {
		out[k] = v
	}
	return out
}

// Macro looks up a macro by name (including its leading "!").
func (c *Context) Macro(name string) (MacroFunc, bool) {
	fn, ok := c.macros[name]
	return fn, ok
}

// Define registers a macro. name must start with "!".
func (c *Context) Define(name string, fn MacroFunc) error {
	if !strings.HasPrefix(name, "!") {
		return fmt.Errorf("%w: %q", ErrInvalidMacroName, name)
	}
	c.macros[name] = fn
	return nil
}

// EvalAlias performs a single pass of recursive alias expansion over body
// (spec §4.3): split on whitespace, expand any tag that names a defined
// alias, keep other tags verbatim, and rejoin with spaces. Termination
// relies on the caller never introducing a cycle in alias definitions.
func (c *Context) EvalAlias(body string) string {
	tags := strings.Fields(body)
	parts := make([]string, 0, len(tags))

	for _, tag := range tags {
		if expansion, ok := c.aliases[tag]; ok {
			parts = append(parts, c.EvalAlias(expansion))
			continue
		}
		parts = append(parts, tag)
	}

	return strings.Join(parts, " ")
}

// Alias defines name as an expansion of value (evaluated once through the
// existing aliases) and, unless generateUnsetter is false, synthesizes a
// sibling "/name" clearer that unwinds every tag the expansion turns on.
func (c *Context) Alias(name, value string, generateUnsetter bool) {
	expanded := c.EvalAlias(value)
	c.aliases[name] = expanded

	if generateUnsetter {
		c.aliases["/"+name] = c.generateUnsetter(expanded)
	}
}

// AliasMultiple runs Alias for each definition in order, sharing
// generateUnsetter across all of them.
func (c *Context) AliasMultiple(defs []AliasDef, generateUnsetter bool) {
	for _, d := range defs {
		c.Alias(d.Name, d.Value, generateUnsetter)
	}
}

// generateUnsetter builds the clearer spelling for each tag in an alias's
// expansion: alias/macro names unwind by name, colors unwind by ground
// ("/fg"/"/bg"), and everything else unwinds by its own name (spec §3).
func (c *Context) generateUnsetter(value string) string {
	tags := strings.Fields(value)
	parts := make([]string, 0, len(tags))

	for _, tag := range tags {
		if idx := strings.IndexByte(tag, '('); idx >= 0 && strings.Contains(tag, ")") {
			tag = tag[:idx]
		}

		if _, ok := c.aliases[tag]; ok {
			parts = append(parts, "/"+tag)
			continue
		}
		if _, ok := c.macros[tag]; ok {
			parts = append(parts, "/"+tag)
			continue
		}

		if cv, err := ParseColor(tag); err == nil {
			if cv.IsBackground {
				parts = append(parts, "/bg")
			} else {
				parts = append(parts, "/fg")
			}
			continue
		}

		parts = append(parts, "/"+tag)
	}

	return strings.Join(parts, " ")
}
