package prism

// renderBufferSize is the fixed capacity of the per-render output buffer.
// Content beyond it is dropped, never written.
const renderBufferSize = 4096

// boundedWriter accumulates rendered output in a fixed-capacity buffer.
// One byte of capacity is reserved so the written length never reaches the
// full buffer size, mirroring the terminator reservation of the wire format
// the engine was designed around. All writes degrade to silent truncation;
// nothing here can fail.
type boundedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

func newBoundedWriter(buf []byte) boundedWriter {
	return boundedWriter{buf: buf}
}

// limit is the highest admissible content length: capacity minus the
// reserved byte. A buffer of capacity zero or one admits no content.
func (w *boundedWriter) limit() int {
	if len(w.buf) == 0 {
		return 0
	}
	return len(w.buf) - 1
}

// remaining exposes the unused span for a specifier formatter to write into.
func (w *boundedWriter) remaining() []byte {
	return w.buf[w.n:w.limit()]
}

// advance records n bytes written into remaining() by a formatter. Counts
// beyond the remaining capacity are clamped and flagged as truncation, so a
// misbehaving formatter cannot push the cursor out of bounds.
func (w *boundedWriter) advance(n int) {
	if n <= 0 {
		return
	}
	free := w.limit() - w.n
	if n > free {
		n = free
		w.truncated = true
	}
	w.n += n
}

func (w *boundedWriter) writeByte(b byte) {
	if w.n >= w.limit() {
		w.truncated = true
		return
	}
	w.buf[w.n] = b
	w.n++
}

func (w *boundedWriter) writeString(s string) {
	copied := copy(w.buf[w.n:w.limit()], s)
	w.n += copied
	if copied < len(s) {
		w.truncated = true
	}
}

func (w *boundedWriter) writeBytes(b []byte) {
	copied := copy(w.buf[w.n:w.limit()], b)
	w.n += copied
	if copied < len(b) {
		w.truncated = true
	}
}

// bytes returns the content written so far.
func (w *boundedWriter) bytes() []byte {
	return w.buf[:w.n]
}
