package util

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Mod returns a non-negative remainder for any sign of a.
func Mod[A constraints.Signed](a A, n A) A {
	return ((a % n) + n) % n
}

// Wrap steps idx by delta around a ring of length n. n must be positive.
func Wrap[A constraints.Signed](idx A, delta A, n A) A {
	return Mod(idx+delta, n)
}

// Clamp limits idx to [0, n-1], or 0 when n is empty.
func Clamp[A constraints.Signed](idx A, n A) A {
	if n <= 0 || idx < 0 {
		return 0
	}
	return Min(idx, n-1)
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Max[A constraints.Ordered](a A, b A) A {
	if a < b {
		return b
	}
	return a
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			res = append(res, p)
		}
	}
	return res
}
