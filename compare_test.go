package vec_test

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teenjuna/vec"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	require.True(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2, 3)))
	require.True(t, vec.Equal(vec.New[int](), vec.New[int]()))
	require.False(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2)))
	require.False(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2, 4)))

	// Only the items matter, not the capacity.
	a := vec.New(vec.WithCapacity[int](100))
	a.Push(1)
	require.True(t, vec.Equal(a, vec.Of(1)))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	numbers := vec.Of(1, 2, 3)
	words := vec.Of("1", "2", "3")

	require.True(t, vec.EqualFunc(numbers, words, func(n int, s string) bool {
		return strconv.Itoa(n) == s
	}))
	require.False(t, vec.EqualFunc(numbers, vec.Of("1"), func(n int, s string) bool {
		return strconv.Itoa(n) == s
	}))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, vec.Compare(vec.Of(1, 2), vec.Of(1, 2)))
	require.Equal(t, -1, vec.Compare(vec.Of(1, 2, 3), vec.Of(1, 2, 4)))
	require.Equal(t, 1, vec.Compare(vec.Of(2), vec.Of(1, 9, 9)))

	// A strict prefix is less than the longer vector.
	require.Equal(t, -1, vec.Compare(vec.Of(1, 2), vec.Of(1, 2, 3)))
	require.Equal(t, -1, vec.Compare(vec.New[int](), vec.Of(0)))
}

func TestCompareFunc(t *testing.T) {
	t.Parallel()

	a := vec.Of("10", "20")
	b := vec.Of(10, 25)

	require.Equal(t, -1, vec.CompareFunc(a, b, func(s string, n int) int {
		parsed, _ := strconv.Atoi(s)
		return cmp.Compare(parsed, n)
	}))
}
