package prism

import (
	"strconv"
	"unicode/utf8"
)

// maxVerbLen bounds conversion-verb token length. Resolution is
// longest-match-first so %lld parses as one token rather than a bare l.
const maxVerbLen = 3

// verb describes one entry of the conversion grammar. Each renderer checks
// the argument kind itself; an argument it does not accept renders in bang
// notation instead of failing the expansion.
type verb struct {
	render func(w *boundedWriter, marker byte, token string, v Value)
}

// verbTable enumerates the conversion grammar explicitly. Tokens follow the
// familiar conversion-specifier spelling, including the length-modifier forms
// that arrive in templates ported from C-family code.
var verbTable = map[string]verb{
	// Signed decimal.
	"d": {render: renderInt}, "i": {render: renderInt},
	"ld": {render: renderInt}, "li": {render: renderInt},
	"lld": {render: renderInt}, "lli": {render: renderInt},
	"hd": {render: renderInt},
	// Unsigned decimal.
	"u": {render: renderUint}, "lu": {render: renderUint},
	"llu": {render: renderUint}, "zu": {render: renderUint},
	"hu": {render: renderUint},
	// Integer bases.
	"x": {render: renderBase(16, false)}, "lx": {render: renderBase(16, false)},
	"X": {render: renderBase(16, true)},
	"o": {render: renderBase(8, false)},
	"b": {render: renderBase(2, false)},
	// Floating point.
	"f": {render: renderFloat('f')},
	"e": {render: renderFloat('e')},
	"g": {render: renderFloat('g')},
	// Text.
	"s": {render: renderString},
	"q": {render: renderQuoted},
	"c": {render: renderChar},
	// Misc.
	"t": {render: renderBool},
	"p": {render: renderPointer},
	"v": {render: renderAny},
}

// writeMismatch emits the fmt-style bang notation for an argument whose kind
// the verb does not accept, e.g. %!d(string=x). Rendering a readable marker
// beats dropping the log line.
func writeMismatch(w *boundedWriter, marker byte, token string, v Value) {
	w.writeByte(marker)
	w.writeByte('!')
	w.writeString(token)
	w.writeByte('(')
	w.writeString(v.Kind().String())
	w.writeByte('=')
	w.writeString(v.text())
	w.writeByte(')')
}

// writeMissingArg emits the notation for a verb with no argument left on the
// cursor, e.g. %!d(MISSING).
func writeMissingArg(w *boundedWriter, marker byte, token string) {
	w.writeByte(marker)
	w.writeByte('!')
	w.writeString(token)
	w.writeString("(MISSING)")
}

// asInt widens an argument to int64 when the conversion is lossless.
func asInt(v Value) (int64, bool) {
	switch v.Kind() {
	case KindInt:
		return v.int(), true
	case KindUint:
		if v.uint() <= 1<<63-1 {
			return int64(v.uint()), true
		}
	}
	return 0, false
}

// asUint widens an argument to uint64 when the conversion is lossless.
func asUint(v Value) (uint64, bool) {
	switch v.Kind() {
	case KindUint:
		return v.uint(), true
	case KindInt:
		if v.int() >= 0 {
			return uint64(v.int()), true
		}
	}
	return 0, false
}

func renderInt(w *boundedWriter, marker byte, token string, v Value) {
	n, ok := asInt(v)
	if !ok {
		writeMismatch(w, marker, token, v)
		return
	}
	var scratch [20]byte
	w.writeBytes(strconv.AppendInt(scratch[:0], n, 10))
}

func renderUint(w *boundedWriter, marker byte, token string, v Value) {
	n, ok := asUint(v)
	if !ok {
		writeMismatch(w, marker, token, v)
		return
	}
	var scratch [20]byte
	w.writeBytes(strconv.AppendUint(scratch[:0], n, 10))
}

func renderBase(base int, upper bool) func(*boundedWriter, byte, string, Value) {
	return func(w *boundedWriter, marker byte, token string, v Value) {
		n, ok := asUint(v)
		if !ok {
			writeMismatch(w, marker, token, v)
			return
		}
		var scratch [64]byte
		out := strconv.AppendUint(scratch[:0], n, base)
		if upper {
			for i, b := range out {
				if b >= 'a' && b <= 'f' {
					out[i] = b - 'a' + 'A'
				}
			}
		}
		w.writeBytes(out)
	}
}

func renderFloat(format byte) func(*boundedWriter, byte, string, Value) {
	return func(w *boundedWriter, marker byte, token string, v Value) {
		var f float64
		switch v.Kind() {
		case KindFloat:
			f = v.float()
		case KindInt:
			f = float64(v.int())
		case KindUint:
			f = float64(v.uint())
		default:
			writeMismatch(w, marker, token, v)
			return
		}
		var scratch [32]byte
		w.writeBytes(strconv.AppendFloat(scratch[:0], f, format, -1, 64))
	}
}

func renderString(w *boundedWriter, marker byte, token string, v Value) {
	if v.Kind() != KindString {
		writeMismatch(w, marker, token, v)
		return
	}
	w.writeString(v.str)
}

func renderQuoted(w *boundedWriter, marker byte, token string, v Value) {
	if v.Kind() != KindString {
		writeMismatch(w, marker, token, v)
		return
	}
	w.writeBytes(strconv.AppendQuote(make([]byte, 0, len(v.str)+2), v.str))
}

func renderChar(w *boundedWriter, marker byte, token string, v Value) {
	n, ok := asInt(v)
	if !ok || n < 0 || n > utf8.MaxRune {
		writeMismatch(w, marker, token, v)
		return
	}
	var scratch [utf8.UTFMax]byte
	w.writeBytes(scratch[:utf8.EncodeRune(scratch[:], rune(n))])
}

func renderBool(w *boundedWriter, marker byte, token string, v Value) {
	if v.Kind() != KindBool {
		writeMismatch(w, marker, token, v)
		return
	}
	w.writeString(strconv.FormatBool(v.bool()))
}

func renderPointer(w *boundedWriter, marker byte, token string, v Value) {
	if v.Kind() != KindPointer {
		writeMismatch(w, marker, token, v)
		return
	}
	var scratch [18]byte
	out := append(scratch[:0], '0', 'x')
	w.writeBytes(strconv.AppendUint(out, v.uint(), 16))
}

func renderAny(w *boundedWriter, _ byte, _ string, v Value) {
	w.writeString(v.text())
}
