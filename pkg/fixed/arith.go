// Package fixed evaluates small fixed-coefficient models over signed
// 64-bit integers. Every operation is checked, so a result either fits
// in an int64 or the call fails.
package fixed

import (
	"errors"
	"math"
)

var (
	ErrOverflow     = errors.New("fixed: int64 overflow")
	ErrDivideByZero = errors.New("fixed: division by zero")
)

func Add(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

// Div truncates toward zero.
func Div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

// ReLU clamps negative values to zero.
func ReLU(x int64) int64 {
	if x > 0 {
		return x
	}
	return 0
}
