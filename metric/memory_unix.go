//go:build linux || darwin

package metric

import "golang.org/x/sys/unix"

// RusageAccountant measures the process maximum resident set size via
// getrusage(2). Only meaningful on platforms exposing rusage.
type RusageAccountant struct{}

// Usage returns the peak RSS in bytes.
func (RusageAccountant) Usage() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	// Maxrss is kilobytes on Linux, bytes on Darwin.
	bytes := uint64(ru.Maxrss)
	if maxrssInKilobytes {
		bytes *= 1024
	}
	return bytes, true
}
