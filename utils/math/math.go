package math

import (
	stdmath "math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Percentage returns part/total*100 rounded half away from zero, 0 when total is 0.
func Percentage[T Number](part, total T) int {
	if total == 0 {
		return 0
	}
	return int(stdmath.Round(float64(part) / float64(total) * 100))
}

// Ratio returns part/total rounded to one decimal place, 0 when total is 0.
func Ratio[T Number](part, total T) float64 {
	if total == 0 {
		return 0
	}
	return stdmath.Round(float64(part)/float64(total)*10) / 10
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
