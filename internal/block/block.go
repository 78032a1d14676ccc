// Package block provides the exclusively owned slot storage backing a vector.
//
// A Block owns one contiguous allocation of element slots. There is at most
// one live owner of an allocation at any time: ownership moves only through
// [Block.Release] and [Block.Swap], never by copying a Block value. A Block
// must not be copied after first use.
package block

// Block is the single owner of a contiguous allocation of slots of type T.
//
// The zero value owns nothing and is ready to use. A Block is not safe for
// concurrent use.
type Block[T any] struct {
	slots []T
}

// Make returns a Block owning count zero-valued slots. A count of zero
// produces a Block that owns no allocation. Make panics if count is negative.
func Make[T any](count int) Block[T] {
	if count < 0 {
		panic("slot count can't be negative")
	}
	if count == 0 {
		return Block[T]{}
	}
	return Block[T]{slots: make([]T, count)}
}

// Len returns the number of owned slots.
func (b *Block[T]) Len() int {
	return len(b.slots)
}

// IsEmpty reports whether the block owns no allocation.
func (b *Block[T]) IsEmpty() bool {
	return b.slots == nil
}

// At returns a pointer to slot i. Access is unchecked beyond the bounds of
// the allocation; the caller guarantees 0 <= i < Len().
func (b *Block[T]) At(i int) *T {
	return &b.slots[i]
}

// Slice returns the slots [i, j) as a view into the owned allocation. The
// view aliases the block's storage and must not outlive the block's
// ownership of it.
func (b *Block[T]) Slice(i, j int) []T {
	return b.slots[i:j]
}

// Release transfers the owned allocation out to the caller and leaves the
// block empty. Releasing an empty block returns nil.
func (b *Block[T]) Release() []T {
	slots := b.slots
	b.slots = nil
	return slots
}

// Swap exchanges the owned allocations of b and other. Both remain valid
// owners of each other's previous storage.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}
