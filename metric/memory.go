package metric

import "runtime"

// MemoryAccountant reports process memory usage. Implementations return
// ok=false when the platform offers no usable measurement; callers must
// treat that as "unavailable", never as zero.
type MemoryAccountant interface {
	// Usage returns the current memory usage in bytes.
	Usage() (bytes uint64, ok bool)
}

// RuntimeAccountant measures the Go heap via runtime.ReadMemStats.
// Available on every platform.
type RuntimeAccountant struct{}

// Usage returns the live heap allocation.
func (RuntimeAccountant) Usage() (uint64, bool) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc, true
}
