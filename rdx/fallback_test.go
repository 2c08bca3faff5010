package rdx

import (
	"math/rand"
	"slices"
	"testing"
)

// TestFallbackSort tests the insertion/merge fallback across the threshold
func TestFallbackSort(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	sizes := []int{0, 1, 2, 17, 18, 19, 20, 37, 64, 127, 255}
	for _, n := range sizes {
		for _, destination := range []int{0, 1} {
			src := make([]uint32, n)
			for i := range src {
				src[i] = rng.Uint32() % 64
			}
			orig := slices.Clone(src)
			tmp := make([]uint32, n)
			out := fallbackSort(src, tmp, ident, destination)
			if !IsSorted(out, ident) {
				t.Errorf("fallbackSort(n=%d, dest=%d) unsorted", n, destination)
			}
			checkPermutation(t, orig, out)
			if n > 0 {
				want := &src[0]
				if destination != 0 {
					want = &tmp[0]
				}
				if &out[0] != want {
					t.Errorf("fallbackSort(n=%d, dest=%d) wrong buffer", n, destination)
				}
			}
		}
	}
}

// TestFallbackSortStable tests stability through both the insertion and the
// merge paths
func TestFallbackSortStable(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, n := range []int{2, 17, 18, 19, 100} {
		for _, destination := range []int{0, 1} {
			keys := make([]uint32, n)
			for i := range keys {
				keys[i] = rng.Uint32() % 4
			}
			ps := makePairs(keys)
			tmp := make([]pair, n)
			out := fallbackSort(ps, tmp, pairKey, destination)
			for i := 1; i < n; i++ {
				if out[i-1].key == out[i].key && out[i-1].index >= out[i].index {
					t.Errorf("fallbackSort(n=%d, dest=%d) broke stability at %d", n, destination, i)
					break
				}
			}
		}
	}
}

// TestFallbackSortAliasedInsertion tests that the insertion path may read src
// while writing it when destination is src
func TestFallbackSortAliasedInsertion(t *testing.T) {
	src := []uint32{5, 4, 3, 2, 1}
	tmp := make([]uint32, len(src))
	out := fallbackSort(src, tmp, ident, 0)
	want := []uint32{1, 2, 3, 4, 5}
	if !slices.Equal(out, want) {
		t.Errorf("fallbackSort aliased = %v, want %v", out, want)
	}
}
