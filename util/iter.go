package util

import "iter"

func SeqOf[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

func SeqAt[T any](seq iter.Seq[T], idx int) (out T, exists bool) {
	var i int
	for item := range seq {
		if i == idx {
			return item, true
		}
		i++
	}
	return out, false
}

func Seq2At[U, V any](seq iter.Seq2[U, V], idx int) (out1 U, out2 V, exists bool) {
	var i int
	for item1, item2 := range seq {
		if i == idx {
			return item1, item2, true
		}
		i++
	}
	return out1, out2, false
}

// Take stops seq after n items. The underlying sequence is not advanced past the nth item.
func Take[T any](seq iter.Seq[T], n uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		var taken uint64
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

func Take2[U, V any](seq iter.Seq2[U, V], n uint64) iter.Seq2[U, V] {
	return func(yield func(U, V) bool) {
		if n == 0 {
			return
		}
		var taken uint64
		for item1, item2 := range seq {
			if !yield(item1, item2) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}
