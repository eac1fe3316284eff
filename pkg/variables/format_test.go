package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int64", int64(-12), "-12"},
		{"plain int", 7, "7"},
		{"float", 3.11, "3.11"},
		{"float without exponent", 1e21, "1000000000000000000000"},
		{"whole float", float64(2), "2"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"True", "True"},
		{"42", int64(42)},
		{"-3", int64(-3)},
		{"3.12", 3.12},
		{"1e5", "1e5"},
		{"inf", "inf"},
		{"1.2.3", "1.2.3"},
		{`"42"`, "42"},
		{`"true"`, "true"},
		{"", ""},
		{"my-project", "my-project"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScalar(tt.in))
		})
	}
}

func TestTruthy(t *testing.T) {
	truthy := []any{true, int64(1), -2.5, "true", "YES", "y", "On", "1", 3}
	falsy := []any{false, int64(0), 0.0, "", "no", "false", "0", "off", nil}

	for _, v := range truthy {
		assert.True(t, Truthy(v), "%#v should be truthy", v)
	}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "%#v should be falsy", v)
	}
}
