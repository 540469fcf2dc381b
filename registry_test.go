package prism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/prism"
)

func staticSpecifier(text, out string) prism.Specifier {
	return prism.Specifier{Text: text, Format: func(dst []byte, _ byte, _ *prism.Context) int {
		return copy(dst, out)
	}}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := prism.NewRegistry()
	reg.Register(staticSpecifier("x", "one"))
	reg.Register(staticSpecifier("xyz", "two"))

	spec, ok := reg.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "x", spec.Text)

	_, ok = reg.Lookup("y")
	assert.False(t, ok)

	assert.Len(t, reg.All(), 2)
}

func TestRegistryRejectsInvalidSpecifiers(t *testing.T) {
	reg := prism.NewRegistry()
	reg.Register(prism.Specifier{Text: "", Format: func(dst []byte, _ byte, _ *prism.Context) int { return 0 }})
	reg.Register(prism.Specifier{Text: "toolong", Format: func(dst []byte, _ byte, _ *prism.Context) int { return 0 }})
	reg.Register(prism.Specifier{Text: "ok", Format: nil})
	assert.Empty(t, reg.All())
}

func TestRegistryDuplicateLastWins(t *testing.T) {
	reg := prism.NewRegistry()
	reg.Register(staticSpecifier("d", "first"))
	reg.Register(staticSpecifier("d", "second"))

	spec, ok := reg.Lookup("d")
	require.True(t, ok)
	var buf [16]byte
	n := spec.Format(buf[:], 'd', nil)
	assert.Equal(t, "second", string(buf[:n]))

	// Both registrations remain visible in All.
	assert.Len(t, reg.All(), 2)

	eng := &prism.Engine{Prefix: '#', Marker: '%', Registry: reg}
	out := make([]byte, 32)
	n, _ = eng.Expand(out, "#d", &prism.Context{})
	assert.Equal(t, "second", string(out[:n]))
}

func TestDefaultRegistryContents(t *testing.T) {
	reg := prism.DefaultRegistry()
	for _, text := range []string{"d", "t", "L", "f", "F", "l", "c", "p"} {
		_, ok := reg.Lookup(text)
		assert.True(t, ok, "specifier %q", text)
	}
	assert.Len(t, reg.All(), 8)
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	reg := prism.NewRegistry()
	reg.Register(staticSpecifier("a", "a"))
	all := reg.All()
	all[0] = staticSpecifier("b", "b")

	spec, ok := reg.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "a", spec.Text)
}
