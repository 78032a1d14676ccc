package vec

import "iter"

// All returns an iterator over index-item pairs in the vector, from first to
// last. The vector must not be modified during iteration; each range over
// the iterator walks the contents as of that moment.
func (v *Vector[Item]) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, item := range v.buf.Slice(0, v.size) {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items in the vector, from first to
// last.
func (v *Vector[Item]) Values() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range v.buf.Slice(0, v.size) {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-item pairs in the vector, from
// last to first.
func (v *Vector[Item]) Backward() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		live := v.buf.Slice(0, v.size)
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}
