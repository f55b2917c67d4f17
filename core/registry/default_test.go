package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fabric/core/block"
)

func TestDefault_Singleton(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	a := Default()
	b := Default()
	assert.Same(t, a, b)
}

func TestDefault_PackageFunctions(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)
	Default().SetLogger(&recLogger{})

	require.True(t, RegisterDirect(0x1000, "DDC", factoryTagged("f")).OK())
	out := RegisterDirect(0x1000, "DDC2", factoryTagged("g"))
	assert.Equal(t, Rejected, out.Status)

	f, name, err := Resolve(0x1000)
	require.NoError(t, err)
	assert.Equal(t, "DDC", name)
	assert.Equal(t, "f", tagOf(f))

	require.True(t, RegisterDescriptor("gain", factoryTagged("gain")).OK())
	_, name, err = ResolveKey("gain")
	require.NoError(t, err)
	assert.Equal(t, "gain", name)

	_, _, err = Resolve(0x9999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDefault_ConcurrentFirstAccess(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	const n = 50
	stores := make([]*Store, n)
	var start, wg sync.WaitGroup
	start.Add(1)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			start.Wait()
			s := Default()
			stores[i] = s
			s.RegisterDirect(block.NocID(0x100+i), "blk", factoryTagged("x"))
		}(i)
	}
	start.Done()
	wg.Wait()

	for _, s := range stores {
		assert.Same(t, stores[0], s)
	}
	direct, _ := Default().Len()
	assert.Equal(t, n, direct)
}
