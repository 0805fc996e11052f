// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Anonymous Mappings
//
// MapAnon() creates read-write anonymous mappings. The returned memory sits
// outside the Go garbage collector's control, which makes it suitable as
// backing storage for arenas that hand out raw byte regions: a large mapped
// chunk adds nothing to the GC scan set.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// A Mapping is safe for concurrent read access. Close() is idempotent.
// Callers must ensure no goroutine touches Bytes() after Close() returns.
package mmap
