package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLossy(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "valid utf-8", input: []byte("#pragma once\nint zażółć;\n"), want: "#pragma once\nint zażółć;\n"},
		{name: "invalid byte replaced", input: []byte{'a', 0xff, 'b'}, want: "a�b"},
		{name: "truncated sequence replaced", input: []byte{'x', 0xc5}, want: "x�"},
		{name: "empty", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lossy(tt.input))
		})
	}
}
