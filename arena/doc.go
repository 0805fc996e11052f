// Package arena provides a fixed-capacity bump allocator and a typed
// allocator adapter for building containers that share one storage region.
//
// # Memory Management
//
// An Arena owns a fixed byte region and a monotonically advancing cursor.
// Allocation rounds the cursor up to the requested alignment and advances it
// by the requested size; there is no per-allocation bookkeeping and no free
// list. Dealloc is a documented no-op: freed regions are never reused, so an
// arena is exhausted by its total allocation volume over its lifetime, not by
// peak live usage. This is a deliberate trade-off (O(1) allocation, zero
// metadata), not a defect.
//
// # GC Interplay
//
// Raw regions and pointer-free element types are carved directly out of the
// arena's byte buffer, which the garbage collector does not scan. Element
// types that contain Go pointers are instead backed by typed slabs that stay
// visible to the collector; the slab's byte span is charged against the
// arena cursor exactly as if it had been carved from the buffer, and the
// slab is pinned to the arena so its lifetime matches the region's. Both
// paths observe the same capacity, alignment, and exhaustion contract.
//
// # Lifetime
//
// The arena does not own its users: Allocator values and containers built
// over them hold plain back-references. Everything allocated from an arena
// must be dropped before Close or Reset is called; the arena must outlive
// every adapter bound to it.
//
// # Concurrency Model
//
// An Arena is not safe for concurrent use. Sharing one arena between
// goroutines requires external synchronization; doing otherwise is a caller
// error, not a handled condition.
package arena
