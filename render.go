package prism

import (
	"errors"
	"fmt"

	"pkt.systems/prism/ansi"
)

// Message is one log statement: its severity, the body template supplied at
// the call site, and the call site itself. It is built fresh per call and
// discarded after rendering.
type Message struct {
	Level    Level
	Template string
	Location Location
}

// Status is the discriminated outcome of a render.
type Status int

const (
	// StatusEmitted means the full message reached the output.
	StatusEmitted Status = iota
	// StatusSkipped means the message was below the minimum level and
	// nothing was written.
	StatusSkipped
	// StatusTruncated means the message was emitted but lost content to the
	// output buffer bound.
	StatusTruncated
	// StatusFailed means no output was produced because of a configuration
	// or write error.
	StatusFailed
)

// ErrNoThemeEntry reports a render against a severity the active theme has no
// colors for. It is the one configuration problem the renderer refuses to
// degrade around: the render is abandoned and nothing is emitted.
var ErrNoThemeEntry = errors.New("prism: no theme entry for level")

// render composes one message: background and foreground escapes for the
// severity's theme entry, the expanded header, the expanded body, and the
// reset sequence. Header and body share one argument cursor, so arguments
// consumed by header specifiers shift the body's view of the remaining
// arguments. A body ending in a newline keeps the newline after the reset so
// the line break itself is not colorized.
func (l *Logger) render(msg Message, args *Args) (Status, error) {
	cfg := l.cfg
	if msg.Level < cfg.MinLevel() {
		return StatusSkipped, nil
	}
	entry, ok := cfg.Theme().Entry(msg.Level)
	if !ok {
		err := fmt.Errorf("%w %s", ErrNoThemeEntry, LevelString(msg.Level))
		fmt.Fprintf(l.diag, "prism: %v\n", err)
		return StatusFailed, err
	}

	var buf [renderBufferSize]byte
	w := newBoundedWriter(buf[:])
	if l.color {
		var esc [24]byte
		w.writeBytes(ansi.AppendBackground(esc[:0], entry.BG))
		w.writeBytes(ansi.AppendForeground(esc[:0], entry.FG))
	}

	ctx := &Context{Level: msg.Level, Location: msg.Location, Args: args, Now: l.now}
	eng := cfg.engine()
	eng.expand(&w, cfg.Header(), ctx)
	eng.expand(&w, msg.Template, ctx)

	trailingNewline := w.n > 0 && w.buf[w.n-1] == '\n'
	if trailingNewline {
		w.n--
	}
	if l.color {
		w.writeString(ansi.Reset)
	}
	if trailingNewline {
		w.writeByte('\n')
	}

	if _, err := l.out.Write(w.bytes()); err != nil {
		fmt.Fprintf(l.diag, "prism: write: %v\n", err)
		return StatusFailed, err
	}
	if w.truncated {
		return StatusTruncated, nil
	}
	return StatusEmitted, nil
}
