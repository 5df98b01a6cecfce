// Package dynfmt provides runtime format strings: templates are parsed once
// and rendered many times against values bound at runtime.
//
// The placeholder grammar follows the familiar brace syntax:
//
//	Hello, {name}! You have {count:>5} new messages.
//
// # Basic Usage
//
// Parse a template and render it with positional or named arguments:
//
//	tmpl := dynfmt.MustParse("{} + {} = {:05}")
//	out, err := tmpl.Format(2, 3, 5)
//	// out: "2 + 3 = 00005"
//
//	greeting := dynfmt.MustParse("Hello, {name}!")
//	out, err = greeting.FormatNamed(map[string]any{"name": "World"})
//	// out: "Hello, World!"
//
// # Placeholder Syntax
//
// A placeholder is {key} or {key:spec}. The key is empty (next positional
// argument), a decimal index, or an identifier. The spec reads
//
//	[[fill]align][sign]['#']['0'][width]['.' precision][form]
//
// where align is '<', '^' or '>', width and precision are a number, N$ or
// name$ (taken from an argument), and ".*" takes the precision from the next
// positional argument. The form letter selects Display (none or 'd'), Debug
// ('?'), Binary ('b'), Octal ('o'), LowerHex ('x'), UpperHex ('X'),
// LowerExp ('e'), UpperExp ('E') or Pointer ('p'). Literal braces are
// written "{{" and "}}".
//
// # Binding
//
// Each render starts with Bind, which checks every argument against the
// forms the template requests for its key, or BindUnchecked, which defers all
// checks to render time:
//
//	b := tmpl.Bind()
//	b.Arg(0, 255).Named("width", 8)
//	out, err := b.Render()
//
// # Error Handling
//
// Errors are *cuserr.CustomError values carrying position or argument
// metadata. Classify them with errors.Is against ErrUnexpectedToken,
// ErrArgumentNotFound, ErrDuplicateArgument, ErrCapabilityMismatch and ErrWriter.
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := dynfmt.New(
//	    dynfmt.WithDisplayWidth(),
//	    dynfmt.WithParseCache(dynfmt.DefaultCacheConfig()),
//	    dynfmt.WithLogger(logger),
//	)
package dynfmt
