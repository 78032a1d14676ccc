package vec

import (
	"fmt"

	"github.com/teenjuna/vec/internal/block"
)

// Push appends an item to the end of the vector, growing the storage if it
// is full.
func (v *Vector[Item]) Push(item Item) {
	v.growIfFull()
	*v.buf.At(v.size) = item
	v.size++
	v.metrics.recordPush()
}

// Pop removes and returns the last item. It panics if the vector is empty.
func (v *Vector[Item]) Pop() Item {
	if v.size == 0 {
		panic("pop from empty vector")
	}
	v.size--
	item := *v.buf.At(v.size)
	clear(v.buf.Slice(v.size, v.size+1))
	return item
}

// Insert places an item at index i, shifting the items from i onwards one
// position towards the end. Inserting at Len() appends. It panics if i is
// out of range.
func (v *Vector[Item]) Insert(i int, item Item) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("index %d out of range with length %d", i, v.size))
	}
	v.growIfFull()
	live := v.buf.Slice(0, v.size+1)
	copy(live[i+1:], live[i:v.size])
	live[i] = item
	v.size++
	v.metrics.recordInsert()
}

// Delete removes and returns the item at index i, shifting the items after
// it one position towards the start. Indices of items before i stay valid.
// It panics if i is out of range.
func (v *Vector[Item]) Delete(i int) Item {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("index %d out of range with length %d", i, v.size))
	}
	live := v.buf.Slice(0, v.size)
	item := live[i]
	copy(live[i:], live[i+1:])
	v.size--
	clear(live[v.size:])
	v.metrics.recordDelete()
	return item
}

// Resize changes the vector's length. Shrinking discards the items past the
// new length; growing appends zero-valued items, reallocating only when the
// new length exceeds the capacity. It panics if length is negative.
func (v *Vector[Item]) Resize(length int) {
	if length < 0 {
		panic("length can't be negative")
	}
	switch {
	case length < v.size:
		clear(v.buf.Slice(length, v.size))
	case length > v.buf.Len():
		v.grow(max(length, 2*v.buf.Len()))
	}
	// Slots past the size are kept zeroed, so growing within the
	// capacity needs no clearing.
	v.size = length
}

// Reserve grows the storage to hold at least capacity items. It never
// shrinks: a capacity at or below the current one leaves the vector
// untouched. It panics if capacity is negative.
func (v *Vector[Item]) Reserve(capacity int) {
	if capacity < 0 {
		panic("capacity can't be negative")
	}
	if capacity <= v.buf.Len() {
		return
	}
	v.grow(capacity)
}

// Clear removes all items but keeps the storage for reuse.
func (v *Vector[Item]) Clear() {
	clear(v.buf.Slice(0, v.size))
	v.size = 0
}

// Swap exchanges the contents of v and other without copying items.
func (v *Vector[Item]) Swap(other *Vector[Item]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.metrics, other.metrics = other.metrics, v.metrics
}

func (v *Vector[Item]) growIfFull() {
	if v.size == v.buf.Len() {
		// size+1 dominates when the doubling wraps around.
		v.grow(max(v.size+1, 2*v.buf.Len()))
	}
}

func (v *Vector[Item]) grow(capacity int) {
	next := block.Make[Item](capacity)
	copy(next.Slice(0, v.size), v.buf.Slice(0, v.size))
	v.buf.Swap(&next)
	v.metrics.recordGrow(v.size)
}
