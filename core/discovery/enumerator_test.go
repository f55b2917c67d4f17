package discovery

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/metrics"
	"github.com/kilianp07/fabric/core/registry"
	infralogger "github.com/kilianp07/fabric/infra/logger"
)

type ctrl struct {
	block.Base
	params map[string]any
}

func newCtrl(args block.Args) (block.Controller, error) {
	return &ctrl{Base: block.NewBase(args), params: args.Params}, nil
}

type enumSink struct {
	metrics.NopSink
	events []metrics.EnumerationEvent
}

func (s *enumSink) RecordEnumeration(ev metrics.EnumerationEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func testStore(t *testing.T) *registry.Store {
	t.Helper()
	s := registry.NewStore(registry.WithLogger(infralogger.NopLogger{}))
	require.True(t, s.RegisterDirect(0x01, "A", newCtrl).OK())
	require.True(t, s.RegisterDirect(0x02, "B", newCtrl).OK())
	return s
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicySkip, p)
	p, err = ParsePolicy("FAIL")
	require.NoError(t, err)
	assert.Equal(t, PolicyFail, p)
	_, err = ParsePolicy("retry")
	assert.Error(t, err)
}

func TestEnumerate_NamesInstances(t *testing.T) {
	sink := &enumSink{}
	e := New(testStore(t), Options{
		Parallelism: 4,
		Params:      map[string]map[string]any{"B": {"gain": 3}},
		Sink:        sink,
	})
	slots := []Slot{
		{Device: 0, Port: 0, NocID: 0x01},
		{Device: 0, Port: 1, NocID: 0x02},
		{Device: 0, Port: 2, NocID: 0x01},
		{Device: 1, Port: 0, NocID: 0x01},
	}
	res, err := e.Enumerate(context.Background(), slots)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Empty(t, res.Skipped)

	var ids []string
	for _, b := range res.Blocks {
		ids = append(ids, b.ID.String())
		assert.Equal(t, b.ID, b.Controller.ID())
		assert.Equal(t, b.Slot.NocID, b.Controller.NocID())
	}
	assert.Equal(t, []string{"0/A#0", "0/B#0", "0/A#1", "1/A#0"}, ids)
	assert.Equal(t, map[string]any{"gain": 3}, res.Blocks[1].Controller.(*ctrl).params)
	assert.Nil(t, res.Blocks[0].Controller.(*ctrl).params)

	require.Len(t, sink.events, 1)
	assert.Equal(t, 4, sink.events[0].Constructed)
	assert.False(t, sink.events[0].Failed)
}

func TestEnumerate_ParamsMatchNameCaseInsensitively(t *testing.T) {
	e := New(testStore(t), Options{
		Params: map[string]map[string]any{
			"B": {"Mode": "iq", "gain": 1},
			"b": {"gain": "4"},
		},
	})
	res, err := e.Enumerate(context.Background(), []Slot{{Port: 0, NocID: 0x02}})
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, map[string]any{"mode": "iq", "gain": "4"}, res.Blocks[0].Controller.(*ctrl).params)
}

func TestFoldParams(t *testing.T) {
	assert.Nil(t, FoldParams(nil))
	got := FoldParams(map[string]map[string]any{
		"DDC": {"input_rate": 1, "num_chans": 1},
		"ddc": {"num_chans": "4"},
		"FIR": {"coeffs": []int{1}},
	})
	assert.Equal(t, map[string]map[string]any{
		"ddc": {"input_rate": 1, "num_chans": "4"},
		"fir": {"coeffs": []int{1}},
	}, got)
}

func TestEnumerate_SkipUnknown(t *testing.T) {
	e := New(testStore(t), Options{Policy: PolicySkip})
	res, err := e.Enumerate(context.Background(), []Slot{
		{Port: 0, NocID: 0x02},
		{Port: 1, NocID: 0x03},
	})
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "B", res.Blocks[0].Name)
	require.Len(t, res.Skipped, 1)
	assert.True(t, errors.Is(res.Skipped[0].Err, registry.ErrNotFound))
	assert.Contains(t, res.Skipped[0].Err.Error(), "00000003")
}

func TestEnumerate_FailUnknown(t *testing.T) {
	e := New(testStore(t), Options{Policy: PolicyFail})
	_, err := e.Enumerate(context.Background(), []Slot{
		{Port: 0, NocID: 0x01},
		{Port: 4, NocID: 0x9999},
	})
	require.Error(t, err)
	var uerr *UnknownBlockError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 4, uerr.Slot.Port)
	assert.True(t, errors.Is(err, registry.ErrNotFound))
	assert.Contains(t, err.Error(), "9999")
}

func TestEnumerate_FactoryError(t *testing.T) {
	s := testStore(t)
	boom := errors.New("boom")
	s.RegisterDirect(0x10, "Broken", func(block.Args) (block.Controller, error) { return nil, boom })
	s.RegisterDirect(0x11, "Empty", func(block.Args) (block.Controller, error) { return nil, nil })
	sink := &enumSink{}
	e := New(s, Options{Sink: sink})

	res, err := e.Enumerate(context.Background(), []Slot{{NocID: 0x10}})
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "0/Broken#0")
	assert.Empty(t, res.Blocks)
	require.Len(t, sink.events, 1)
	assert.True(t, sink.events[0].Failed)

	_, err = e.Enumerate(context.Background(), []Slot{{NocID: 0x11}})
	assert.ErrorContains(t, err, "no controller")
}

func TestEnumerate_ContextCanceled(t *testing.T) {
	s := testStore(t)
	var calls atomic.Int32
	s.RegisterDirect(0x20, "Counted", func(args block.Args) (block.Controller, error) {
		calls.Add(1)
		return newCtrl(args)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(s, Options{}).Enumerate(ctx, []Slot{{NocID: 0x20}, {NocID: 0x20}})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, calls.Load())
}

type failingResolver struct{}

func (failingResolver) Resolve(block.NocID) (block.Factory, string, error) {
	return nil, "", errors.New("bus error")
}

func TestEnumerate_ResolverError(t *testing.T) {
	_, err := New(failingResolver{}, Options{}).Enumerate(context.Background(), []Slot{{NocID: 1}})
	assert.ErrorContains(t, err, "bus error")
}
