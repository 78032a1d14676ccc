package vec_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teenjuna/vec"
)

func TestAll(t *testing.T) {
	t.Parallel()

	v := vec.Of("a", "b", "c")

	var indexes []int
	var items []string
	for i, item := range v.All() {
		indexes = append(indexes, i)
		items = append(items, item)
	}

	require.Equal(t, []int{0, 1, 2}, indexes)
	require.Equal(t, []string{"a", "b", "c"}, items)
}

func TestValues(t *testing.T) {
	t.Parallel()

	v := vec.Of(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(v.Values()))

	require.Empty(t, slices.Collect(vec.New[int]().Values()))
}

func TestBackward(t *testing.T) {
	t.Parallel()

	v := vec.Of(1, 2, 3)

	var indexes []int
	var items []int
	for i, item := range v.Backward() {
		indexes = append(indexes, i)
		items = append(items, item)
	}

	require.Equal(t, []int{2, 1, 0}, indexes)
	require.Equal(t, []int{3, 2, 1}, items)
}

func TestIterationStopsEarly(t *testing.T) {
	t.Parallel()

	v := vec.Of(1, 2, 3, 4)

	var seen []int
	for _, item := range v.All() {
		seen = append(seen, item)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, seen)
}

func TestIterationSeesCurrentContents(t *testing.T) {
	t.Parallel()

	v := vec.Of(1)
	values := v.Values()

	require.Equal(t, []int{1}, slices.Collect(values))

	// Each range over the iterator walks the contents as of that moment.
	v.Push(2)
	require.Equal(t, []int{1, 2}, slices.Collect(values))
}

func TestIterationSkipsSpareCapacity(t *testing.T) {
	t.Parallel()

	v := vec.New(vec.WithCapacity[int](10))
	v.Push(1)
	v.Push(2)

	require.Equal(t, []int{1, 2}, slices.Collect(v.Values()))
}
