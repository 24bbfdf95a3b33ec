// Package safe provides helpers for numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

// Uint64 converts a signed column value to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts a block number or count to int64 for drivers without unsigned support.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// SubFloor returns a-b, or zero when b exceeds a.
func SubFloor(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

// Offset returns page*size for zero-indexed paging, rejecting negative pages,
// non-positive sizes and products that overflow int.
func Offset(page, size int) (int, error) {
	if page < 0 || size < 1 {
		return 0, fmt.Errorf("page %d size %d out of range", page, size)
	}
	if page > math.MaxInt/size {
		return 0, fmt.Errorf("page %d size %d overflows offset", page, size)
	}
	return page * size, nil
}
