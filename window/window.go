// Package window computes visible index ranges for list virtualization:
// given scroll geometry it returns the inclusive slice of items to render
// and the pixel offset of the first rendered item.
package window

import "errors"

// ErrInvalidGeometry is returned when item or viewport heights are not
// positive.
var ErrInvalidGeometry = errors.New("window: item and viewport heights must be positive")

// Config describes the scroll geometry.
type Config struct {
	// TotalItems is the length of the backing list.
	TotalItems int
	// ItemHeight is the fixed pixel height of one item.
	ItemHeight int
	// ViewportHeight is the pixel height of the visible area.
	ViewportHeight int
	// ScrollOffset is the current vertical scroll position in pixels.
	ScrollOffset int
	// Buffer is the number of extra items rendered on each side of the
	// visible range.
	Buffer int
}

// Range is the computed render window.
type Range struct {
	// Start and End are the inclusive item index bounds to render.
	Start, End int
	// OffsetTop is the pixel offset of item Start from the list top.
	OffsetTop int
}

// Compute returns the render window for cfg. Pure function: negative
// scroll offsets clamp to 0 and the range clamps to [0, TotalItems).
func Compute(cfg Config) (Range, error) {
	if cfg.ItemHeight <= 0 || cfg.ViewportHeight <= 0 {
		return Range{}, ErrInvalidGeometry
	}
	if cfg.TotalItems <= 0 {
		return Range{Start: 0, End: -1, OffsetTop: 0}, nil
	}

	scroll := max(cfg.ScrollOffset, 0)
	buffer := max(cfg.Buffer, 0)

	first := min(scroll/cfg.ItemHeight, cfg.TotalItems-1)
	visible := (cfg.ViewportHeight + cfg.ItemHeight - 1) / cfg.ItemHeight

	start := max(first-buffer, 0)
	end := min(first+visible-1+buffer, cfg.TotalItems-1)

	return Range{
		Start:     start,
		End:       end,
		OffsetTop: start * cfg.ItemHeight,
	}, nil
}

// Count returns the number of items in r, zero for an empty range.
func (r Range) Count() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}
