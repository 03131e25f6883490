package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing argument",
			args: nil,
			want: "Invalid input: give a positive integer.\n",
		},
		{
			name: "non-numeric argument",
			args: []string{"banana"},
			want: "Invalid input: give a positive integer.\n",
		},
		{
			name: "negative argument",
			args: []string{"-7"},
			want: "Invalid input: give a positive integer.\n",
		},
		{
			name: "zero",
			args: []string{"0"},
			want: "0\n",
		},
		{
			name: "one",
			args: []string{"1"},
			want: "0\n",
		},
		{
			name: "exact multiple of 30",
			args: []string{"30"},
			want: "10\n",
		},
		{
			name: "rounds up to 60",
			args: []string{"32"},
			want: "17\n",
		},
		{
			name: "rounds 100 up to 120",
			args: []string{"100"},
			want: "30\n",
		},
		{
			name: "extra arguments ignored",
			args: []string{"30", "unused"},
			want: "10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			run(tt.args, &out)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_LargerBound(t *testing.T) {
	var out strings.Builder
	run([]string{"1020"}, &out)

	// 1020 is a multiple of 30; there are 171 primes below it
	assert.Equal(t, "171\n", out.String())
}
