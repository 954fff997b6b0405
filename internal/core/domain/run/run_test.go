package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Args(t *testing.T) {
	count := 10
	seed := 7

	tests := []struct {
		name  string
		count *int
		seed  *int
		want  []string
	}{
		{name: "required only", want: []string{"c", "p", "i", "/out/r1"}},
		{name: "count only", count: &count, want: []string{"c", "p", "i", "/out/r1", "10"}},
		{name: "seed only", seed: &seed, want: []string{"c", "p", "i", "/out/r1", "7"}},
		{name: "count then seed", count: &count, seed: &seed, want: []string{"c", "p", "i", "/out/r1", "10", "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{
				MethodConfig:    "c",
				ProblemName:     "p",
				ProblemInstance: "i",
				ExecutionCount:  tt.count,
				Seed:            tt.seed,
			}
			assert.Equal(t, tt.want, req.Args("/out/r1"))
		})
	}
}
