package prism

import "time"

// Context carries the per-render state visible to specifier formatters and
// conversion verbs: the message severity and call site, the shared argument
// cursor, and an optional clock override for tests.
type Context struct {
	Level    Level
	Location Location
	Args     *Args

	// Now overrides the wall clock used by the #d and #t specifiers. When
	// nil the specifiers serve per-second cached strings.
	Now func() time.Time
}

func (c *Context) dateString() string {
	if c != nil && c.Now != nil {
		return c.Now().Format(dateLayout)
	}
	return dateCache.current(time.Now())
}

func (c *Context) timeString() string {
	if c != nil && c.Now != nil {
		return c.Now().Format(timeLayout)
	}
	return timeCache.current(time.Now())
}

// Engine expands templates. It scans left to right recognizing two escape
// grammars: the configured prefix character followed by a registered
// specifier, and the marker character followed by a conversion verb. Both
// grammars degrade to literal text on any failure; expansion itself never
// errors and never stalls.
type Engine struct {
	Prefix   byte
	Marker   byte
	Registry *Registry
}

// Expand renders template into dst and returns the content length together
// with a truncation flag. Content never exceeds len(dst)-1 bytes; whatever
// does not fit is silently dropped.
func (e *Engine) Expand(dst []byte, template string, ctx *Context) (int, bool) {
	w := newBoundedWriter(dst)
	e.expand(&w, template, ctx)
	return w.n, w.truncated
}

func (e *Engine) expand(w *boundedWriter, template string, ctx *Context) {
	for i := 0; i < len(template); {
		c := template[i]
		switch c {
		case e.Prefix:
			spec, length, ok := e.Registry.match(template[i+1:])
			if !ok {
				// Unmatched escapes are literal text.
				w.writeByte(c)
				i++
				continue
			}
			trigger := template[i+1]
			w.advance(spec.Format(w.remaining(), trigger, ctx))
			i += 1 + length
		case e.Marker:
			i += e.convert(w, template[i:], ctx)
		default:
			w.writeByte(c)
			i++
		}
	}
}

// convert handles one occurrence of the marker character at the head of rest.
// It returns how many template bytes were consumed (always at least one).
func (e *Engine) convert(w *boundedWriter, rest string, ctx *Context) int {
	if len(rest) == 1 {
		w.writeByte(rest[0])
		return 1
	}
	if rest[1] == e.Marker {
		// A doubled marker escapes itself.
		w.writeByte(e.Marker)
		return 2
	}
	longest := min(maxVerbLen, len(rest)-1)
	for length := longest; length >= 1; length-- {
		token := rest[1 : 1+length]
		verb, ok := verbTable[token]
		if !ok {
			continue
		}
		arg, ok := ctx.Args.Next()
		if !ok {
			writeMissingArg(w, e.Marker, token)
			return 1 + length
		}
		verb.render(w, e.Marker, token, arg)
		return 1 + length
	}
	// No verb matched: the marker stays literal.
	w.writeByte(rest[0])
	return 1
}
