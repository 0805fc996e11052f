//go:build !unix && !linux && !darwin && !freebsd && !openbsd && !netbsd && !windows

package mmap

// Platforms without anonymous mapping support fall back to heap storage.
// The mapping contract (Bytes invalid after Close) still holds.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), func([]byte) error { return nil }, nil
}
