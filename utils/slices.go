package utils

import "iter"

// Map yields fn(v) for every v in s.
func Map[S any, T any](s []S, fn func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of s for which fn is true, in order.
func Filter[S any](s []S, fn func(S) bool) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, v := range s {
			if fn(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// All reports whether fn holds for every element of s. It is true for an empty s.
func All[S any](s []S, fn func(S) bool) bool {
	for _, v := range s {
		if !fn(v) {
			return false
		}
	}
	return true
}

// Count returns how many elements of s satisfy fn.
func Count[S any](s []S, fn func(S) bool) int {
	n := 0
	for range Filter(s, fn) {
		n++
	}
	return n
}
