// Package sorting provides a complexity-adaptive sort that dispatches
// between insertion sort, stable merge sort and quicksort based on input
// size and sortedness.
package sorting

const (
	// smallInputThreshold is the size below which insertion sort wins on
	// constant factors.
	smallInputThreshold = 50

	// nearlySortedRatio is the adjacent-inversion ratio below which the
	// input counts as nearly sorted and the stable merge path is taken.
	nearlySortedRatio = 0.10

	// quickSortCutoff is the partition size below which quicksort falls
	// back to insertion sort.
	quickSortCutoff = 12
)

// Smart sorts items by compare and returns the sorted result. The input
// slice is never mutated; Smart sorts a copy.
//
// Dispatch: insertion sort for fewer than 50 elements, stable merge sort
// when the adjacent-inversion ratio is below 10%, quicksort otherwise.
func Smart[T any](items []T, compare func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)

	switch {
	case len(out) < smallInputThreshold:
		insertionSort(out, compare)
	case float64(AdjacentInversions(out, compare)) < nearlySortedRatio*float64(len(out)):
		// Stability matters here: equal elements of a nearly sorted input
		// keep their relative order.
		mergeSort(out, compare)
	default:
		quickSort(out, compare, 0, len(out)-1)
	}
	return out
}

// AdjacentInversions counts positions i where items[i] sorts after
// items[i+1]. Zero means fully sorted; the count approximates total
// sortedness in O(n).
func AdjacentInversions[T any](items []T, compare func(a, b T) int) int {
	inversions := 0
	for i := 0; i+1 < len(items); i++ {
		if compare(items[i], items[i+1]) > 0 {
			inversions++
		}
	}
	return inversions
}

// IsSorted reports whether items is ordered by compare.
func IsSorted[T any](items []T, compare func(a, b T) int) bool {
	return AdjacentInversions(items, compare) == 0
}

func insertionSort[T any](items []T, compare func(a, b T) int) {
	for i := 1; i < len(items); i++ {
		current := items[i]
		j := i - 1
		for j >= 0 && compare(items[j], current) > 0 {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = current
	}
}

// mergeSort is a stable bottom-up merge sort using one scratch buffer.
func mergeSort[T any](items []T, compare func(a, b T) int) {
	n := len(items)
	scratch := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(items, scratch, lo, mid, hi, compare)
		}
	}
}

func merge[T any](items, scratch []T, lo, mid, hi int, compare func(a, b T) int) {
	if mid >= hi {
		return
	}
	copy(scratch[lo:hi], items[lo:hi])
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			items[k] = scratch[j]
			j++
		case j >= hi:
			items[k] = scratch[i]
			i++
		case compare(scratch[j], scratch[i]) < 0: // strict: keeps equal elements stable
			items[k] = scratch[j]
			j++
		default:
			items[k] = scratch[i]
			i++
		}
	}
}

func quickSort[T any](items []T, compare func(a, b T) int, lo, hi int) {
	for lo < hi {
		if hi-lo < quickSortCutoff {
			insertionSort(items[lo:hi+1], compare)
			return
		}

		p := partition(items, compare, lo, hi)

		// Recurse into the smaller side, loop on the larger.
		if p-lo < hi-p {
			quickSort(items, compare, lo, p-1)
			lo = p + 1
		} else {
			quickSort(items, compare, p+1, hi)
			hi = p - 1
		}
	}
}

// partition uses the median of first/middle/last as pivot.
func partition[T any](items []T, compare func(a, b T) int, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if compare(items[mid], items[lo]) < 0 {
		items[mid], items[lo] = items[lo], items[mid]
	}
	if compare(items[hi], items[lo]) < 0 {
		items[hi], items[lo] = items[lo], items[hi]
	}
	if compare(items[hi], items[mid]) < 0 {
		items[hi], items[mid] = items[mid], items[hi]
	}
	items[mid], items[hi] = items[hi], items[mid]

	pivot := items[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if compare(items[j], pivot) < 0 {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}
