// Package bigint implements arbitrary-precision signed integers and exact
// rationals on top of base-1e9 digit cells.
//
// Int and Rat are immutable values: arithmetic methods return new results
// and never modify their receivers, so values can be shared freely across
// goroutines once constructed. The zero value of both types is a usable
// representation of zero.
//
// Division truncates toward zero and the remainder carries the sign of the
// dividend, matching Go's native integer semantics.
package bigint
