package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/blocks/ddc"
	"github.com/kilianp07/fabric/blocks/duc"
	"github.com/kilianp07/fabric/blocks/fft"
	"github.com/kilianp07/fabric/blocks/fir"
	"github.com/kilianp07/fabric/blocks/gain"
	"github.com/kilianp07/fabric/blocks/nullsrcsink"
	"github.com/kilianp07/fabric/blocks/radio"
	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

func TestBuiltinsRegisterThemselves(t *testing.T) {
	cases := []struct {
		id   block.NocID
		name string
	}{
		{ddc.NocID, "DDC"},
		{duc.NocID, "DUC"},
		{fft.NocID, "FFT"},
		{fir.NocID, "FIR"},
		{radio.NocID, "Radio"},
		{nullsrcsink.NocID, "NullSrcSink"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, name, err := registry.Resolve(c.id)
			require.NoError(t, err)
			assert.Equal(t, c.name, name)

			args := block.Args{ID: block.BlockID{Name: name}, NocID: c.id}
			ctrl, err := f(args)
			require.NoError(t, err)
			assert.Equal(t, c.id, ctrl.NocID())
			assert.Equal(t, "0/"+c.name+"#0", ctrl.ID().String())
		})
	}
}

func TestGainRegistersByKey(t *testing.T) {
	f, name, err := registry.ResolveKey(gain.Key)
	require.NoError(t, err)
	assert.Equal(t, "gain", name)
	ctrl, err := f(block.Args{Params: map[string]any{"gain": 12}})
	require.NoError(t, err)
	assert.Equal(t, 12, ctrl.(*gain.Controller).Gain())

	// The gain block has no compiled-in NoC ID.
	_, _, err = registry.Resolve(0xB16)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDuplicateBuiltinRegistrationIsIgnored(t *testing.T) {
	out := registry.RegisterDirect(ddc.NocID, "DDC-copy", fft.New)
	assert.Equal(t, registry.Rejected, out.Status)
	assert.ErrorIs(t, out.Reason, registry.ErrDuplicate)

	_, name, err := registry.Resolve(ddc.NocID)
	require.NoError(t, err)
	assert.Equal(t, "DDC", name)
}
