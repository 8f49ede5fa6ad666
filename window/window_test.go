package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Validation(t *testing.T) {
	_, err := Compute(Config{TotalItems: 10, ItemHeight: 0, ViewportHeight: 100})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = Compute(Config{TotalItems: 10, ItemHeight: 20, ViewportHeight: -1})
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestCompute_TopOfList(t *testing.T) {
	r, err := Compute(Config{
		TotalItems:     1000,
		ItemHeight:     20,
		ViewportHeight: 100,
		ScrollOffset:   0,
		Buffer:         2,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, r.Start, "buffer clamps at the top")
	assert.Equal(t, 6, r.End) // items 0-4 visible + 2 buffer below
	assert.Equal(t, 0, r.OffsetTop)
	assert.Equal(t, 7, r.Count())
}

func TestCompute_MidList(t *testing.T) {
	r, err := Compute(Config{
		TotalItems:     1000,
		ItemHeight:     20,
		ViewportHeight: 100,
		ScrollOffset:   400, // first visible item = 20
		Buffer:         3,
	})
	require.NoError(t, err)

	assert.Equal(t, 17, r.Start)
	assert.Equal(t, 27, r.End) // items 20-24 visible + 3 buffer each side
	assert.Equal(t, 17*20, r.OffsetTop)
}

func TestCompute_BottomClamp(t *testing.T) {
	r, err := Compute(Config{
		TotalItems:     30,
		ItemHeight:     20,
		ViewportHeight: 100,
		ScrollOffset:   10000,
		Buffer:         2,
	})
	require.NoError(t, err)

	assert.Equal(t, 29, r.End, "end clamps to the last item")
	assert.Equal(t, 27, r.Start, "start stays within the list even past the end")
	assert.LessOrEqual(t, r.Start, r.End)
	assert.Equal(t, 27*20, r.OffsetTop)
}

func TestCompute_ScrollPastEndStaysInBounds(t *testing.T) {
	for _, scroll := range []int{600, 601, 5000, 1 << 20} {
		r, err := Compute(Config{
			TotalItems:     30,
			ItemHeight:     20,
			ViewportHeight: 100,
			ScrollOffset:   scroll,
			Buffer:         2,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Start, 0)
		assert.Less(t, r.Start, 30)
		assert.Less(t, r.End, 30)
		assert.Less(t, r.OffsetTop, 30*20)
	}
}

func TestCompute_PartialItemRowsRoundUp(t *testing.T) {
	// 90px viewport over 20px items shows 4.5 rows; 5 must be rendered.
	r, err := Compute(Config{
		TotalItems:     100,
		ItemHeight:     20,
		ViewportHeight: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Count())
}

func TestCompute_EmptyList(t *testing.T) {
	r, err := Compute(Config{TotalItems: 0, ItemHeight: 20, ViewportHeight: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Count())
}

func TestCompute_NegativeScrollClamps(t *testing.T) {
	r, err := Compute(Config{
		TotalItems:     10,
		ItemHeight:     20,
		ViewportHeight: 40,
		ScrollOffset:   -500,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 0, r.OffsetTop)
}
