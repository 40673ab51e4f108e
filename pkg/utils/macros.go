package utils

import "golang.org/x/exp/constraints"

func Clamp[T constraints.Integer | constraints.Float](min, value, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ZeroAdjust8 returns v, or 1 if v is zero.
func ZeroAdjust8(v uint8) uint8 {
	if v == 0 {
		return 1
	}
	return v
}
