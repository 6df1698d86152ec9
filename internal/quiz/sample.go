package quiz

import "math/rand/v2"

// NewRand returns an unseeded generator for production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// perm returns the first k entries of a uniformly random permutation of
// [0, n), using a partial Fisher–Yates shuffle over an index array.
func perm(n, k int, rng *rand.Rand) []int {
	k = min(max(k, 0), n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Sample draws up to k elements from items without replacement, in random
// order. items is not modified.
func Sample[T any](items []T, k int, rng *rand.Rand) []T {
	picked := perm(len(items), k, rng)
	out := make([]T, len(picked))
	for i, p := range picked {
		out[i] = items[p]
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of items.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	return Sample(items, len(items), rng)
}
