package prism

import (
	"os"
	"strconv"
)

// maxSpecifierLen bounds specifier text length. Lookup tries lengths 3, 2, 1
// so the longest registered match always wins.
const maxSpecifierLen = 3

// FormatFunc renders one specifier occurrence. It writes at most len(dst)
// bytes into dst and returns the count written. trigger is the byte that
// immediately followed the prefix character in the template. ctx carries the
// render state (severity, call site, argument cursor).
type FormatFunc func(dst []byte, trigger byte, ctx *Context) int

// Specifier binds a short token (1–3 bytes) to a formatter. It is recognized
// in templates after the configured prefix character.
type Specifier struct {
	Text   string
	Format FormatFunc
}

// Registry is the ordered collection of specifiers consulted by the
// expansion engine. It grows by append and is never mutated during a render;
// replace it wholesale through the configuration to reconfigure.
type Registry struct {
	specs []Specifier
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a specifier. Registering a text that is already present
// does not replace the earlier entry, but the newer one wins at match time
// (last-registered-wins within a length).
func (r *Registry) Register(spec Specifier) {
	if spec.Text == "" || len(spec.Text) > maxSpecifierLen || spec.Format == nil {
		return
	}
	r.specs = append(r.specs, spec)
}

// Lookup returns the specifier that exactly matches text, if any. Between
// duplicates the most recently registered entry is returned.
func (r *Registry) Lookup(text string) (Specifier, bool) {
	if r == nil {
		return Specifier{}, false
	}
	for i := len(r.specs) - 1; i >= 0; i-- {
		if r.specs[i].Text == text {
			return r.specs[i], true
		}
	}
	return Specifier{}, false
}

// All returns the registered specifiers in registration order.
func (r *Registry) All() []Specifier {
	if r == nil {
		return nil
	}
	out := make([]Specifier, len(r.specs))
	copy(out, r.specs)
	return out
}

// match resolves the longest registered specifier at the head of rest, which
// is the template text following a prefix character. It returns the matched
// specifier and its length, or false when no registered text matches.
func (r *Registry) match(rest string) (Specifier, int, bool) {
	if r == nil {
		return Specifier{}, 0, false
	}
	longest := min(maxSpecifierLen, len(rest))
	for length := longest; length >= 1; length-- {
		candidate := rest[:length]
		for i := len(r.specs) - 1; i >= 0; i-- {
			if r.specs[i].Text == candidate {
				return r.specs[i], length, true
			}
		}
	}
	return Specifier{}, 0, false
}

var processID = os.Getpid()

func formatDate(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, ctx.dateString())
}

func formatTime(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, ctx.timeString())
}

func formatLevel(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, LevelString(ctx.Level))
}

func formatFunction(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, ctx.Location.Function)
}

func formatFile(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, ctx.Location.File)
}

func formatLine(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, strconv.Itoa(ctx.Location.Line))
}

func formatLocation(dst []byte, _ byte, ctx *Context) int {
	return copy(dst, ctx.Location.String())
}

func formatPID(dst []byte, _ byte, _ *Context) int {
	return copy(dst, strconv.Itoa(processID))
}

// DefaultRegistry returns a registry preloaded with the built-in specifiers:
//
//	d  current date            t  current time
//	L  severity name           p  process id
//	f  call-site function      F  call-site file
//	l  call-site line          c  "function @ file:line"
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Specifier{Text: "d", Format: formatDate})
	r.Register(Specifier{Text: "t", Format: formatTime})
	r.Register(Specifier{Text: "L", Format: formatLevel})
	r.Register(Specifier{Text: "f", Format: formatFunction})
	r.Register(Specifier{Text: "F", Format: formatFile})
	r.Register(Specifier{Text: "l", Format: formatLine})
	r.Register(Specifier{Text: "c", Format: formatLocation})
	r.Register(Specifier{Text: "p", Format: formatPID})
	return r
}
