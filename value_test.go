package prism

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOfKinds(t *testing.T) {
	cases := []struct {
		arg  any
		kind Kind
		text string
	}{
		{42, KindInt, "42"},
		{int8(-3), KindInt, "-3"},
		{int64(1 << 40), KindInt, "1099511627776"},
		{uint(7), KindUint, "7"},
		{uint64(18446744073709551615), KindUint, "18446744073709551615"},
		{uintptr(0xbeef), KindPointer, "0xbeef"},
		{float32(0.5), KindFloat, "0.5"},
		{2.25, KindFloat, "2.25"},
		{"hello", KindString, "hello"},
		{true, KindBool, "true"},
		{false, KindBool, "false"},
		{WarnLevel, KindLevel, "WARN"},
		{Location{File: "a.go", Function: "f", Line: 1}, KindLocation, "f @ a.go:1"},
		{errors.New("boom"), KindString, "boom"},
		{nil, KindString, "<nil>"},
		// Unrecognized types degrade to their fmt rendering.
		{[]int{1, 2}, KindString, "[1 2]"},
	}
	for _, tc := range cases {
		v := valueOf(tc.arg)
		assert.Equal(t, tc.kind, v.Kind(), "arg %v", tc.arg)
		assert.Equal(t, tc.text, v.text(), "arg %v", tc.arg)
	}
}

func TestValueOfPassesValueThrough(t *testing.T) {
	v := valueOf(StringValue("wrapped"))
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "wrapped", v.text())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "uint", KindUint.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "pointer", KindPointer.String())
	assert.Equal(t, "level", KindLevel.String())
	assert.Equal(t, "location", KindLocation.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestArgsCursor(t *testing.T) {
	args := NewArgs("a", 1, true)
	require.Equal(t, 3, args.Remaining())

	v, ok := args.Next()
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind())

	v, ok = args.Next()
	require.True(t, ok)
	assert.Equal(t, KindInt, v.Kind())

	v, ok = args.Next()
	require.True(t, ok)
	assert.Equal(t, KindBool, v.Kind())
	assert.Equal(t, 0, args.Remaining())

	_, ok = args.Next()
	assert.False(t, ok)
}

func TestArgsNilSafe(t *testing.T) {
	var args *Args
	assert.Equal(t, 0, args.Remaining())
	_, ok := args.Next()
	assert.False(t, ok)
}
