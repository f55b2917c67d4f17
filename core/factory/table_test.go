package factory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_FirstInsertWins(t *testing.T) {
	tbl := NewTable[uint32, string]()
	require.NoError(t, tbl.Insert(0x1000, "DDC"))
	err := tbl.Insert(0x1000, "DDC2")
	assert.True(t, errors.Is(err, ErrDuplicate))

	v, ok := tbl.Get(0x1000)
	assert.True(t, ok)
	assert.Equal(t, "DDC", v)
	assert.Equal(t, 1, tbl.Len())
	assert.False(t, tbl.Contains(0x2000))
}

func TestTable_KeysSorted(t *testing.T) {
	tbl := NewTable[string, int]()
	for i, k := range []string{"fir", "ddc", "radio", "fft"} {
		require.NoError(t, tbl.Insert(k, i))
	}
	assert.Equal(t, []string{"ddc", "fft", "fir", "radio"}, tbl.Keys())
}

func TestTable_ConcurrentInsert(t *testing.T) {
	tbl := NewTable[int, string]()
	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = tbl.Insert(i, fmt.Sprintf("v%d", i))
			_ = tbl.Insert(0, "late")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, n, tbl.Len())
}
