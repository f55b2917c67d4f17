package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/infra/logger"
)

func TestNew(t *testing.T) {
	ctrl, err := New(block.Args{
		ID:     block.BlockID{Name: "Radio"},
		Params: map[string]any{"num_rx": 2, "num_tx": 0, "tick_rate": 245.76e6},
		Logger: logger.NopLogger{},
	})
	require.NoError(t, err)
	assert.Equal(t, Config{NumRx: 2, NumTx: 0, TickRate: 245.76e6}, ctrl.(*Controller).Config())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(block.Args{Params: map[string]any{"num_rx": 0, "num_tx": 0}})
	assert.ErrorContains(t, err, "channel count")
	_, err = New(block.Args{Params: map[string]any{"tick_rate": -1}})
	assert.ErrorContains(t, err, "tick rate")
}
