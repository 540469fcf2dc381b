package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedWriterReservesOneByte(t *testing.T) {
	buf := make([]byte, 4)
	w := newBoundedWriter(buf)
	w.writeString("abcd")
	assert.Equal(t, 3, w.n)
	assert.True(t, w.truncated)
	assert.Equal(t, "abc", string(w.bytes()))
}

func TestBoundedWriterExactFit(t *testing.T) {
	buf := make([]byte, 4)
	w := newBoundedWriter(buf)
	w.writeString("abc")
	assert.Equal(t, 3, w.n)
	assert.False(t, w.truncated)
}

func TestBoundedWriterZeroAndOneCapacity(t *testing.T) {
	for _, size := range []int{0, 1} {
		w := newBoundedWriter(make([]byte, size))
		w.writeByte('x')
		assert.Equal(t, 0, w.n, "capacity %d", size)
		assert.True(t, w.truncated, "capacity %d", size)
	}
}

func TestBoundedWriterAdvanceClamps(t *testing.T) {
	w := newBoundedWriter(make([]byte, 8))
	w.advance(100)
	assert.Equal(t, 7, w.n)
	assert.True(t, w.truncated)

	w = newBoundedWriter(make([]byte, 8))
	w.advance(-5)
	assert.Equal(t, 0, w.n)
	assert.False(t, w.truncated)
}

func TestBoundedWriterRemainingShrinks(t *testing.T) {
	w := newBoundedWriter(make([]byte, 8))
	assert.Len(t, w.remaining(), 7)
	w.writeString("ab")
	assert.Len(t, w.remaining(), 5)
}
