// Package vec provides a generic, dynamically resizable sequence container.
//
// A [Vector] keeps its items in a single contiguous, exclusively owned
// allocation and tracks length separately from capacity. When it runs out of
// room it reallocates to twice the previous capacity, so a run of pushes
// costs amortized constant time per item.
//
// A Vector is not safe for concurrent use. Views into its storage (from
// [Vector.Slice] or the iterators) are invalidated by any operation that
// reallocates or shifts items.
package vec

import (
	"errors"
	"fmt"
	"iter"

	"github.com/teenjuna/vec/internal/block"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Vector is a growable sequence of items backed by one exclusively owned
// allocation. The first Len() slots hold live items; the rest are spare
// capacity. A Vector must not be copied after first use: a copy would share
// the storage with the original. Use [Vector.Clone] for an independent copy
// and [Vector.Move] to transfer ownership.
//
// The zero Vector is empty and ready to use. [New] creates one with options;
// [Of] and [Collect] create one from existing items.
type Vector[Item any] struct {
	buf     block.Block[Item]
	size    int
	metrics *metrics
}

// New creates a vector configured by the given options. Without options the
// vector is empty and owns no allocation.
func New[Item any](options ...Option[Item]) *Vector[Item] {
	cfg := newConfig(options...)

	v := &Vector[Item]{
		buf:     block.Make[Item](max(cfg.length, cfg.capacity)),
		size:    cfg.length,
		metrics: cfg.metrics,
	}

	if cfg.hasFill {
		live := v.buf.Slice(0, v.size)
		for i := range live {
			live[i] = cfg.fill
		}
	}

	return v
}

// Of creates a vector holding the given items. Its capacity equals its
// length.
func Of[Item any](items ...Item) *Vector[Item] {
	v := &Vector[Item]{
		buf:  block.Make[Item](len(items)),
		size: len(items),
	}
	copy(v.buf.Slice(0, v.size), items)
	return v
}

// Collect creates a vector from the items of seq.
func Collect[Item any](seq iter.Seq[Item]) *Vector[Item] {
	v := New[Item]()
	for item := range seq {
		v.Push(item)
	}
	return v
}

// Clone returns an independent copy of the vector. The copy holds the same
// items but its capacity equals its length; later changes to either vector
// are not visible in the other.
func (v *Vector[Item]) Clone() *Vector[Item] {
	c := &Vector[Item]{
		buf:     block.Make[Item](v.size),
		size:    v.size,
		metrics: v.metrics,
	}
	copy(c.buf.Slice(0, c.size), v.buf.Slice(0, v.size))
	return c
}

// Move transfers the vector's storage into a new vector without copying
// items. Afterwards v is empty with no allocation.
func (v *Vector[Item]) Move() *Vector[Item] {
	moved := &Vector[Item]{
		size:    v.size,
		metrics: v.metrics,
	}
	moved.buf.Swap(&v.buf)
	v.size = 0
	return moved
}

// Len returns the number of items in the vector.
func (v *Vector[Item]) Len() int {
	return v.size
}

// Cap returns the number of items the vector can hold before it has to
// reallocate.
func (v *Vector[Item]) Cap() int {
	return v.buf.Len()
}

// IsEmpty reports whether the vector holds no items.
func (v *Vector[Item]) IsEmpty() bool {
	return v.size == 0
}

// At returns the item at index i, or an error wrapping [ErrIndexOutOfRange]
// if i is out of range.
func (v *Vector[Item]) At(i int) (Item, error) {
	if i < 0 || i >= v.size {
		var zero Item
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.size)
	}
	return *v.buf.At(i), nil
}

// Get returns the item at index i. It panics if i is out of range.
func (v *Vector[Item]) Get(i int) Item {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("index %d out of range with length %d", i, v.size))
	}
	return *v.buf.At(i)
}

// Set replaces the item at index i. It panics if i is out of range.
func (v *Vector[Item]) Set(i int, item Item) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("index %d out of range with length %d", i, v.size))
	}
	*v.buf.At(i) = item
}

// Slice returns the live items as a view into the vector's storage. The view
// is valid until the next operation that reallocates or shifts items. Its
// capacity equals its length, so appending to it reallocates instead of
// writing into the vector's spare slots.
func (v *Vector[Item]) Slice() []Item {
	return v.buf.Slice(0, v.size)[:v.size:v.size]
}

// Release transfers the vector's storage out to the caller and leaves the
// vector empty. The returned slice holds the live items; its capacity may
// exceed its length.
func (v *Vector[Item]) Release() []Item {
	items := v.buf.Release()[:v.size]
	v.size = 0
	return items
}
