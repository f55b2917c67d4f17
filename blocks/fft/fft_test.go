package fft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/core/block"
)

func TestNew(t *testing.T) {
	ctrl, err := New(block.Args{})
	require.NoError(t, err)
	assert.Equal(t, Config{Length: 256, Direction: Forward}, ctrl.(*Controller).Config())

	ctrl, err = New(block.Args{Params: map[string]any{"length": 1024, "direction": "reverse", "shift": true}})
	require.NoError(t, err)
	assert.Equal(t, Config{Length: 1024, Direction: Reverse, Shift: true}, ctrl.(*Controller).Config())
}

func TestNew_Invalid(t *testing.T) {
	for _, l := range []int{0, 1, 100, 1 << 17} {
		_, err := New(block.Args{Params: map[string]any{"length": l}})
		assert.Error(t, err, l)
	}
	_, err := New(block.Args{Params: map[string]any{"direction": "sideways"}})
	assert.ErrorContains(t, err, "direction")
}
