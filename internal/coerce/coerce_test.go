package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
		want bool
	}{
		{name: "absent", raw: nil, want: false},
		{name: "true", raw: true, want: true},
		{name: "false", raw: false, want: false},
		{name: "one", raw: 1, want: true},
		{name: "zero", raw: 0, want: false},
		{name: "fraction", raw: 0.5, want: true},
		{name: "unsigned", raw: uint64(3), want: true},
		{name: "string yes", raw: "YES", want: false},
		{name: "map", raw: map[string]any{"a": 1}, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Bool(tc.raw))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{name: "absent", raw: nil, want: "", wantOK: false},
		{name: "string", raw: "Avenir", want: "Avenir", wantOK: true},
		{name: "empty string", raw: "", want: "", wantOK: true},
		{name: "integer", raw: 42, want: "42", wantOK: true},
		{name: "negative int64", raw: int64(-7), want: "-7", wantOK: true},
		{name: "large unsigned", raw: uint64(18446744073709551615), want: "18446744073709551615", wantOK: true},
		{name: "float", raw: 1.5, want: "1.5", wantOK: true},
		{name: "whole float", raw: 2.0, want: "2", wantOK: true},
		{name: "bool", raw: true, want: "1", wantOK: true},
		{name: "list", raw: []any{"a"}, want: "", wantOK: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := String(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Int(nil))
	assert.Equal(t, 0, Int("12"))
	assert.Equal(t, 12, Int(12))
	assert.Equal(t, 3, Int(3.9))
	assert.Equal(t, -3, Int(-3.9))
	assert.Equal(t, 1, Int(true))
	assert.Equal(t, 9, Int(uint8(9)))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Float(nil))
	assert.Equal(t, 0.0, Float("1.5"))
	assert.Equal(t, 1.5, Float(1.5))
	assert.Equal(t, 4.0, Float(int32(4)))
	assert.InDelta(t, 0.25, Float(float32(0.25)), 1e-9)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), Duration(nil))
	assert.Equal(t, time.Duration(0), Duration("2"))
	assert.Equal(t, 2*time.Second, Duration(2))
	assert.Equal(t, 250*time.Millisecond, Duration(0.25))
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(String(nil)))
	assert.True(t, IsEmpty(String("")))
	assert.False(t, IsEmpty(String("x")))
	assert.False(t, IsEmpty(String(0)))
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Map(nil))
	assert.Nil(t, Map("x"))
	assert.Equal(t, map[string]any{"x": 1}, Map(map[string]any{"x": 1}))
}
