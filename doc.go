// Package prism is a minimal, themeable console logging library. A log call
// supplies a severity, a body template and substitution arguments; prism
// expands the configured header template and the body through one template
// engine, wraps the result in truecolor escape sequences from the active
// theme, and writes the line to the output in a single call.
//
// # Template language
//
// Templates mix literal text with two escape grammars. The prefix character
// (default '#') introduces a registered specifier of one to three bytes:
//
//	#d  current date     #t  current time
//	#L  severity name    #p  process id
//	#f  function         #F  file
//	#l  line             #c  "function @ file:line"
//
// Matching is longest-first, so a registered "ab" wins over "a" for the
// template "#ab". Unmatched escapes stay literal text; expansion never fails.
//
// The marker character (default '%') introduces a conversion verb resolved
// against an explicit grammar (%d, %s, %x, %f, %p, %q, %v, and the C-style
// length-modifier spellings such as %lld). Each verb consumes one argument
// from the cursor shared between header and body. A "%%" produces a literal
// percent; unknown verbs, missing arguments and mismatched argument kinds
// degrade to readable text in the output rather than errors.
//
// # Usage
//
//	logger := prism.New(os.Stdout)
//	logger.Info("listening on port %d\n", 8080)
//
// Custom specifiers extend the registry:
//
//	logger.Config().RegisterSpecifier(prism.Specifier{
//		Text: "ptl",
//		Format: func(dst []byte, trigger byte, ctx *prism.Context) int {
//			return copy(dst, "lock state here")
//		},
//	})
//	logger.Info("#ptl\n")
//
// Output is bounded per render; content beyond the buffer capacity is
// silently truncated, never an error. The single hard failure is rendering a
// severity the active theme has no entry for, which is reported to the
// diagnostics writer and emits nothing.
//
// Color is enabled when the destination is a terminal, and can be forced on
// or off through Options. Themes map each severity to a background and
// foreground RGB pair; the built-in dark and light themes mirror the classic
// tables, and custom themes build from hex triples.
package prism
