// Package ring provides a fixed-capacity circular buffer.
//
// A Buffer never grows. Pushing into a full buffer overwrites the element
// at the opposite end, which makes it suitable for bounded histories and
// sliding windows where the newest data matters most.
//
// # Storage
//
// New allocates backing storage on the heap. NewFrom wraps a caller-supplied
// slice, so the buffer can live entirely inside memory the caller controls.
//
// # Concurrency Model
//
// A Buffer is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally.
package ring
