//go:build !linux && !darwin

package metric

// RusageAccountant is unavailable on platforms without rusage; Usage
// always reports ok=false rather than a silent zero.
type RusageAccountant struct{}

// Usage reports that no measurement is available.
func (RusageAccountant) Usage() (uint64, bool) {
	return 0, false
}
