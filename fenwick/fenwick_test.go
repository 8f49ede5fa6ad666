package fenwick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/algokit/testutil"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := New[int](0)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestTree_PrefixSums(t *testing.T) {
	tree, err := FromSlice([]int{3, 2, -1, 6, 5})
	require.NoError(t, err)

	got, err := tree.Query(0)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = tree.Query(2)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = tree.Query(4)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestTree_RangeQuery(t *testing.T) {
	tree, err := FromSlice([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	got, err := tree.RangeQuery(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = tree.RangeQuery(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, tree.Update(2, 10))
	got, err = tree.RangeQuery(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 19, got)
}

func TestTree_Bounds(t *testing.T) {
	tree, err := New[int](3)
	require.NoError(t, err)

	_, err = tree.Query(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tree.Query(3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tree.RangeQuery(2, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.ErrorIs(t, tree.Update(3, 1), ErrIndexOutOfBounds)
}

func TestTree_Float64(t *testing.T) {
	tree, err := FromSlice([]float64{0.5, 1.5, 2.0})
	require.NoError(t, err)

	got, err := tree.RangeQuery(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestTree_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(11)
	items := rng.Ints(100, 500)

	tree, err := FromSlice(items)
	require.NoError(t, err)

	check := func() {
		for l := 0; l < len(items); l += 7 {
			for r := l; r < len(items); r += 9 {
				want := 0
				for i := l; i <= r; i++ {
					want += items[i]
				}
				got, err := tree.RangeQuery(l, r)
				require.NoError(t, err)
				require.Equal(t, want, got, "range [%d,%d]", l, r)
			}
		}
	}

	check()

	for i := 0; i < 25; i++ {
		idx := rng.Intn(len(items))
		delta := rng.Intn(100) - 50
		items[idx] += delta
		require.NoError(t, tree.Update(idx, delta))
	}
	check()
}
