package ddc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/core/block"
)

func TestNew(t *testing.T) {
	ctrl, err := New(block.Args{Params: map[string]any{"num_chans": 2, "input_rate": 200e6, "output_rate": 25e6}})
	require.NoError(t, err)
	c := ctrl.(*Controller)
	assert.Equal(t, 2, c.Config().NumChans)
	assert.Equal(t, 8, c.Decimation())

	ctrl, err = New(block.Args{})
	require.NoError(t, err)
	assert.Equal(t, 1, ctrl.(*Controller).Decimation())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(block.Args{Params: map[string]any{"num_chans": 0}})
	assert.ErrorContains(t, err, "num_chans")

	_, err = New(block.Args{Params: map[string]any{"input_rate": 1e6, "output_rate": 2e6}})
	assert.ErrorContains(t, err, "exceeds")

	_, err = New(block.Args{Params: map[string]any{"num_chans": "many"}})
	assert.Error(t, err)
}
