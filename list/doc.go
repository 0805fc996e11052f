// Package list implements a generic doubly linked list whose nodes are
// served by an arena-backed allocator.
//
// # Structure
//
// A List is a sentinel-terminated circular ring: the sentinel is an ordinary
// field of the List itself (never allocator-provided) and represents both
// before-first and after-last. Walking next from any node eventually reaches
// the sentinel, and the list is empty exactly when the sentinel links to
// itself. Node storage comes from a rebound arena.Allocator for the internal
// node layout, so one arena can back the caller's element type and the
// list's nodes at once while preserving arena-identity equality.
//
// # Failure Guarantees
//
// Insert and Clone are all-or-nothing: if node allocation fails (typically
// with arena.ErrOutOfCapacity), the list is left exactly as it was and the
// partially built copy is released. The one documented exception is the
// non-propagating MoveAssign fallback, which moves elements one at a time:
// when a mid-sequence allocation fails, the destination is cleared and the
// source keeps whatever had not yet been moved out.
//
// # Iterators
//
// Iterators are bidirectional and bound to their list. Dereferencing the
// sentinel, advancing past End, or using an iterator against a different
// list reports ErrInvalidIterator instead of corrupting the ring. For plain
// traversal, All and Backward yield elements as range-over-func sequences.
//
// Lists are not safe for concurrent use.
package list
