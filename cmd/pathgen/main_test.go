package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exec(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, args))
	return out.String(), errOut.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestSpiral(t *testing.T) {
	out, stderr := exec(t, "-box", "-10,3,5,4", "spiral")
	rows := lines(out)
	require.Len(t, rows, 21)
	assert.Equal(t, "index,x,y,continuous", rows[0])
	assert.Equal(t, "0,-8.5,7,false", rows[1])
	assert.Empty(t, stderr)
}

func TestLine(t *testing.T) {
	out, _ := exec(t, "-fast", "z", "-points", "5", "line")
	assert.Equal(t, []string{
		"index,z,continuous",
		"0,0,false",
		"1,0.25,false",
		"2,0.5,false",
		"3,0.75,false",
		"4,1,false",
	}, lines(out))
}

func TestSnakeGrid(t *testing.T) {
	out, _ := exec(t, "-box", "0,2,0,1", "-points", "3", "-alternating", "-continuous", "grid")
	rows := lines(out)
	require.Len(t, rows, 10)
	assert.Equal(t, "2,2,0,true", rows[3])
	assert.Equal(t, "3,2,0.5,true", rows[4])
	assert.Equal(t, "5,0,0.5,true", rows[6])
}

func TestGridJitter(t *testing.T) {
	plain, _ := exec(t, "-points", "4", "grid")
	a, _ := exec(t, "-points", "4", "-seed", "7", "-jitter", "10", "grid")
	b, _ := exec(t, "-points", "4", "-seed", "7", "-jitter", "10", "grid")
	assert.Equal(t, a, b)
	assert.NotEqual(t, plain, a)
	assert.Len(t, lines(a), 17)
}

func TestRegionOfInterest(t *testing.T) {
	out, _ := exec(t, "-box", "-1,2,-1,2", "-points", "3", "-circle", "0,0,1", "-outer", "z,0,10,2", "grid")
	rows := lines(out)
	require.Len(t, rows, 11)
	assert.Equal(t, "index,z,x,y,continuous", rows[0])
	assert.Equal(t, "0,0,0,-1,false", rows[1])
	assert.Equal(t, "9,10,0,1,false", rows[10])
}

func TestVerbose(t *testing.T) {
	_, stderr := exec(t, "-v", "-points", "2", "line")
	assert.Contains(t, stderr, "compound built")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no kind", nil, "expected one path kind"},
		{"unknown kind", []string{"hexagon"}, `unknown path kind "hexagon"`},
		{"bad box", []string{"-box", "0,1", "grid"}, "-box"},
		{"bad circle", []string{"-circle", "0,0,-1", "grid"}, "-circle"},
		{"bad outer", []string{"-outer", "z,0,1", "grid"}, "-outer"},
		{"line without sampling", []string{"line"}, "line"},
		{"axis clash", []string{"-outer", "x,0,1,2", "grid"}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := run(&out, &errOut, tt.args)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.want))
			assert.Empty(t, out.String())
		})
	}
}
