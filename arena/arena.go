package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/hupe1980/arenakit/internal/conv"
	"github.com/hupe1980/arenakit/internal/mmap"
	"github.com/hupe1980/arenakit/resource"
)

var (
	// ErrOutOfCapacity is returned when an allocation request exceeds the
	// arena's remaining capacity. The cursor is left unchanged.
	ErrOutOfCapacity = errors.New("arena: out of capacity")
	// ErrClosed is returned when allocating from a closed arena.
	ErrClosed = errors.New("arena: closed")
	// ErrInvalidAlignment is returned when the requested alignment is not a
	// positive power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a power of two")
)

// DefaultAlignment is the alignment used when callers pass a non-positive
// alignment (8 bytes, the strictest natural alignment on 64-bit platforms).
const DefaultAlignment = 8

// Stats tracks arena usage metrics.
//
// Note on semantics:
//   - BytesUsed: bytes requested by successful allocations (before padding)
//   - BytesWasted: padding added for alignment
//   - TotalAllocs: cumulative successful allocation count
//   - FailedAllocs: cumulative allocations rejected with ErrOutOfCapacity
type Stats struct {
	BytesUsed    uint64
	BytesWasted  uint64
	TotalAllocs  uint64
	FailedAllocs uint64
}

// Arena is a fixed-capacity bump allocator.
//
// The zero value is not usable; construct arenas with New.
type Arena struct {
	buf    []byte
	offset int

	mapping *mmap.Mapping // non-nil when backed by an anonymous mapping
	ctrl    *resource.Controller
	logger  *slog.Logger

	// pins keeps GC-visible slabs alive for element types that contain
	// pointers; see the package documentation.
	pins []any

	stats  Stats
	closed bool
}

// Option is a configuration option for Arena.
type Option func(*options)

type options struct {
	buffer []byte
	mmap   bool
	ctrl   *resource.Controller
	logger *slog.Logger
}

// WithBuffer uses the caller-supplied buffer as the arena's storage.
// The arena's capacity is len(buf) and the capacity argument to New is
// ignored. The buffer must not be touched by the caller while the arena
// is live.
func WithBuffer(buf []byte) Option {
	return func(o *options) { o.buffer = buf }
}

// WithMmap backs the arena with an off-heap anonymous mapping instead of a
// heap byte slice. Large arenas then add nothing to the GC scan set.
func WithMmap() Option {
	return func(o *options) { o.mmap = true }
}

// WithController charges the arena's capacity against a process-wide memory
// budget. New fails with resource.ErrMemoryLimitExceeded when the budget is
// exhausted; Close returns the capacity to the budget.
func WithController(c *resource.Controller) Option {
	return func(o *options) { o.ctrl = c }
}

// WithLogger enables debug tracing of allocation failures and lifecycle
// events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates an Arena with the given capacity in bytes.
func New(capacity int, opts ...Option) (*Arena, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.buffer != nil && o.mmap {
		return nil, fmt.Errorf("arena: WithBuffer and WithMmap are mutually exclusive")
	}
	if o.buffer != nil {
		capacity = len(o.buffer)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("arena: capacity must be positive, got %d", capacity)
	}

	if err := o.ctrl.AcquireMemory(conv.IntToInt64(capacity)); err != nil {
		return nil, err
	}

	a := &Arena{
		ctrl:   o.ctrl,
		logger: o.logger,
	}

	switch {
	case o.buffer != nil:
		a.buf = o.buffer
	case o.mmap:
		m, err := mmap.MapAnon(capacity)
		if err != nil {
			o.ctrl.ReleaseMemory(conv.IntToInt64(capacity))
			return nil, fmt.Errorf("arena: anonymous mapping failed: %w", err)
		}
		a.mapping = m
		a.buf = m.Bytes()
	default:
		a.buf = make([]byte, capacity)
	}

	return a, nil
}

// Alloc carves a region of size bytes aligned to align out of the arena.
// The cursor is rounded up to align and advanced past the region; on
// ErrOutOfCapacity the cursor is left exactly where it was. align must be a
// power of two; a non-positive align selects DefaultAlignment. A size of
// zero returns a nil slice and consumes nothing.
//
// Regions of a freshly created arena are zero-filled. After Reset, region
// contents are unspecified.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	aligned, err := a.reserve(size, align)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return a.buf[aligned : aligned+size : aligned+size], nil
}

// AllocPointer allocates size bytes aligned to align and returns a pointer
// to the region. Callers must not store Go pointers in the region; use an
// Allocator for element types that contain pointers.
func (a *Arena) AllocPointer(size, align int) (unsafe.Pointer, error) {
	b, err := a.Alloc(size, align)
	if err != nil || b == nil {
		return nil, err
	}
	return unsafe.Pointer(&b[0]), nil
}

// reserve performs the cursor arithmetic shared by the byte path and the
// pinned-slab path. It returns the aligned start offset of the reservation.
func (a *Arena) reserve(size, align int) (int, error) {
	if a.closed {
		return 0, ErrClosed
	}
	if size < 0 {
		return 0, fmt.Errorf("arena: negative size %d", size)
	}
	if align <= 0 {
		align = DefaultAlignment
	}
	if align&(align-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	if size == 0 {
		return a.offset, nil
	}

	aligned := (a.offset + align - 1) &^ (align - 1)
	if aligned < 0 || aligned+size < 0 || aligned+size > len(a.buf) {
		a.stats.FailedAllocs++
		if a.logger != nil {
			a.logger.Debug("arena allocation rejected",
				"size", size, "align", align,
				"offset", a.offset, "capacity", len(a.buf))
		}
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, capacity %d",
			ErrOutOfCapacity, size, aligned, len(a.buf))
	}

	used, _ := conv.IntToUint64(size)
	wasted, _ := conv.IntToUint64(aligned - a.offset)
	a.stats.BytesUsed += used
	a.stats.BytesWasted += wasted
	a.stats.TotalAllocs++

	a.offset = aligned + size
	return aligned, nil
}

// pin keeps a typed slab alive for the lifetime of the arena.
func (a *Arena) pin(slab any) {
	a.pins = append(a.pins, slab)
}

// Dealloc releases a previously allocated region. It is a documented no-op:
// the arena keeps no record of freed regions and never reuses them.
func (a *Arena) Dealloc(_ []byte, _ int) {}

// Reset moves the cursor back to zero and drops pinned slabs, restarting the
// arena. Everything previously allocated from it becomes invalid; callers
// must guarantee no live container still uses the arena.
func (a *Arena) Reset() {
	if a.closed {
		return
	}
	a.offset = 0
	a.pins = nil
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
	if a.logger != nil {
		a.logger.Debug("arena reset", "capacity", len(a.buf))
	}
}

// Close releases the arena's storage. After Close the arena rejects all
// allocations with ErrClosed. Close is idempotent.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.pins = nil

	capacity := len(a.buf)
	a.buf = nil

	var err error
	if a.mapping != nil {
		err = a.mapping.Close()
		a.mapping = nil
	}

	a.ctrl.ReleaseMemory(conv.IntToInt64(capacity))

	if a.logger != nil {
		a.logger.Debug("arena closed", "capacity", capacity)
	}
	return err
}

// Capacity returns the arena's fixed capacity in bytes.
func (a *Arena) Capacity() int { return len(a.buf) }

// Offset returns the current cursor position.
func (a *Arena) Offset() int { return a.offset }

// Remaining returns the bytes left before exhaustion, ignoring alignment
// padding future allocations may add.
func (a *Arena) Remaining() int { return len(a.buf) - a.offset }

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats { return a.stats }

// Usage returns the fraction of capacity consumed, in percent.
func (a *Arena) Usage() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf)) * 100
}

func (a *Arena) String() string {
	return fmt.Sprintf(
		"Arena{capacity: %d, offset: %d, used: %d, wasted: %d, usage: %.1f%%, allocs: %d, failed: %d}",
		len(a.buf), a.offset,
		a.stats.BytesUsed, a.stats.BytesWasted,
		a.Usage(), a.stats.TotalAllocs, a.stats.FailedAllocs,
	)
}
