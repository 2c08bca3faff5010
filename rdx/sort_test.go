// Copyright 2026 go-radixsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdx

import (
	"math/rand"
	"slices"
	"testing"
)

// pair is the typical record shape: a key plus a payload that tags the
// element's original position, which makes stability observable.
type pair struct {
	key   uint32
	index uint32
}

func pairKey(p pair) uint32 { return p.key }

func ident(k uint32) uint32 { return k }

// makePairs tags every key with its position.
func makePairs(keys []uint32) []pair {
	ps := make([]pair, len(keys))
	for i, k := range keys {
		ps[i] = pair{key: k, index: uint32(i)}
	}
	return ps
}

// checkPermutation verifies out is a reordering of in, not a corruption.
func checkPermutation(t *testing.T, in, out []uint32) {
	t.Helper()
	a := slices.Clone(in)
	b := slices.Clone(out)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("output is not a permutation of input")
	}
}

// TestSortEmpty tests sorting an empty slice
func TestSortEmpty(t *testing.T) {
	var empty, tmp []uint32
	out := Sort(empty, tmp, ident, DestAny, ModeAuto)
	if len(out) != 0 {
		t.Errorf("Sort(empty) returned %v, want empty", out)
	}
}

// TestSortSingle tests sorting a single element
func TestSortSingle(t *testing.T) {
	src := []uint32{42}
	tmp := make([]uint32, 1)
	out := Sort(src, tmp, ident, DestAny, ModeAuto)
	if out[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", out)
	}
}

// TestSortSingleDestTmp tests that a forced destination moves even one element
func TestSortSingleDestTmp(t *testing.T) {
	src := []uint32{42}
	tmp := make([]uint32, 1)
	out := Sort(src, tmp, ident, DestTmp, ModeAuto)
	if &out[0] != &tmp[0] || out[0] != 42 {
		t.Errorf("Sort(DestTmp) = %v in wrong buffer", out)
	}
}

// TestSortExample tests the canonical worked example
func TestSortExample(t *testing.T) {
	src := []uint32{5, 3, 3, 1, 4}
	tmp := make([]uint32, len(src))
	out := Sort(src, tmp, ident, DestSrc, ModeAuto)
	want := []uint32{1, 3, 3, 4, 5}
	if !slices.Equal(out, want) {
		t.Errorf("Sort([5 3 3 1 4]) = %v, want %v", out, want)
	}
	if &out[0] != &src[0] {
		t.Errorf("DestSrc result not in src buffer")
	}
}

// TestSortExampleStability tests that the two tied 3s keep input order
func TestSortExampleStability(t *testing.T) {
	ps := makePairs([]uint32{5, 3, 3, 1, 4})
	tmp := make([]pair, len(ps))
	out := Sort(ps, tmp, pairKey, DestSrc, ModeAuto)
	want := []pair{{1, 3}, {3, 1}, {3, 2}, {4, 4}, {5, 0}}
	if !slices.Equal(out, want) {
		t.Errorf("stable sort = %v, want %v", out, want)
	}
}

// TestSortRandom tests random data across sizes and both modes
func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 3, 17, 18, 19, 100, 127, 128, 129, 255, 256, 257, 1000, 1499, 1500, 4096, 10000}
	modes := []Mode{ModeAuto, ModeLSD, ModeMSD}
	for _, mode := range modes {
		for _, n := range sizes {
			src := make([]uint32, n)
			for i := range src {
				src[i] = rng.Uint32()
			}
			orig := slices.Clone(src)
			tmp := make([]uint32, n)
			out := Sort(src, tmp, ident, DestAny, mode)
			if !IsSorted(out, ident) {
				t.Errorf("Sort(mode=%d, n=%d) produced unsorted result", mode, n)
			}
			checkPermutation(t, orig, out)
		}
	}
}

// TestSortMatchesStdlib verifies Sort produces the exact stdlib ordering
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{100, 256, 1000, 10000, 60001}
	for _, n := range sizes {
		data1 := make([]uint32, n)
		data2 := make([]uint32, n)
		for i := range data1 {
			v := rng.Uint32() % 1000000
			data1[i] = v
			data2[i] = v
		}
		tmp := make([]uint32, n)
		out := Sort(data1, tmp, ident, DestAny, ModeAuto)
		slices.Sort(data2)
		if !slices.Equal(out, data2) {
			t.Errorf("Sort mismatch against stdlib for n=%d", n)
		}
	}
}

// TestSortStability tests stability on heavily tied random data
func TestSortStability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := []int{18, 19, 200, 1499, 1500, 5000, 70000}
	modes := []Mode{ModeAuto, ModeLSD, ModeMSD}
	for _, mode := range modes {
		for _, n := range sizes {
			keys := make([]uint32, n)
			for i := range keys {
				keys[i] = rng.Uint32() % 16 // few distinct keys, long tie runs
			}
			ps := makePairs(keys)
			tmp := make([]pair, n)
			out := Sort(ps, tmp, pairKey, DestAny, mode)
			if !IsSorted(out, pairKey) {
				t.Errorf("Sort(mode=%d, n=%d) unsorted", mode, n)
			}
			for i := 1; i < len(out); i++ {
				if out[i-1].key == out[i].key && out[i-1].index >= out[i].index {
					t.Errorf("Sort(mode=%d, n=%d) broke stability at %d: %v >= %v",
						mode, n, i, out[i-1], out[i])
					break
				}
			}
		}
	}
}

// TestSortDestination tests that forced destinations land in the right buffer
func TestSortDestination(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sizes := []int{1, 5, 17, 18, 19, 100, 1000, 1500, 2000}
	modes := []Mode{ModeAuto, ModeLSD, ModeMSD}
	for _, mode := range modes {
		for _, n := range sizes {
			for _, dest := range []Destination{DestSrc, DestTmp, DestAny} {
				src := make([]uint32, n)
				for i := range src {
					src[i] = rng.Uint32()
				}
				orig := slices.Clone(src)
				tmp := make([]uint32, n)
				out := Sort(src, tmp, ident, dest, mode)
				if !IsSorted(out, ident) {
					t.Errorf("Sort(mode=%d, dest=%d, n=%d) unsorted", mode, dest, n)
				}
				checkPermutation(t, orig, out)
				switch dest {
				case DestSrc:
					if &out[0] != &src[0] {
						t.Errorf("Sort(mode=%d, n=%d) DestSrc result not in src", mode, n)
					}
				case DestTmp:
					if &out[0] != &tmp[0] {
						t.Errorf("Sort(mode=%d, n=%d) DestTmp result not in tmp", mode, n)
					}
				}
			}
		}
	}
}

// TestSortAllEqual tests the degenerate single-bucket input on every path.
// Buffer-role swaps replace the scatters here, so this exercises the
// source/scratch bookkeeping that follows them.
func TestSortAllEqual(t *testing.T) {
	sizes := []int{1, 17, 18, 19, 127, 128, 200, 1500, 5000}
	modes := []Mode{ModeAuto, ModeLSD, ModeMSD}
	for _, mode := range modes {
		for _, n := range sizes {
			for _, dest := range []Destination{DestSrc, DestTmp, DestAny} {
				keys := make([]uint32, n)
				for i := range keys {
					keys[i] = 0xDEADBEEF
				}
				ps := makePairs(keys)
				tmp := make([]pair, n)
				out := Sort(ps, tmp, pairKey, dest, mode)
				for i := range out {
					if out[i].key != 0xDEADBEEF || out[i].index != uint32(i) {
						t.Errorf("Sort(mode=%d, dest=%d, n=%d) disturbed equal keys at %d: %v",
							mode, dest, n, i, out[i])
						break
					}
				}
				if dest == DestSrc && &out[0] != &ps[0] {
					t.Errorf("Sort(mode=%d, n=%d) DestSrc result not in src", mode, n)
				}
				if dest == DestTmp && &out[0] != &tmp[0] {
					t.Errorf("Sort(mode=%d, n=%d) DestTmp result not in tmp", mode, n)
				}
			}
		}
	}
}

// TestSortIdempotent tests that sorting a sorted array changes nothing
func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 19, 300, 2000} {
		src := make([]uint32, n)
		for i := range src {
			src[i] = rng.Uint32()
		}
		tmp := make([]uint32, n)
		first := slices.Clone(Sort(src, tmp, ident, DestSrc, ModeAuto))
		again := Sort(src, tmp, ident, DestSrc, ModeAuto)
		if !slices.Equal(first, again) {
			t.Errorf("Sort not idempotent for n=%d", n)
		}
	}
}

// TestSortSortedInput tests already-sorted and reverse-sorted inputs
func TestSortSortedInput(t *testing.T) {
	n := 3000
	asc := make([]uint32, n)
	desc := make([]uint32, n)
	for i := range asc {
		asc[i] = uint32(i)
		desc[i] = uint32(n - i)
	}
	tmp := make([]uint32, n)
	if out := Sort(slices.Clone(asc), tmp, ident, DestSrc, ModeAuto); !slices.Equal(out, asc) {
		t.Errorf("Sort(sorted) disturbed input")
	}
	out := Sort(slices.Clone(desc), tmp, ident, DestSrc, ModeAuto)
	if !IsSorted(out, ident) {
		t.Errorf("Sort(reverse) produced unsorted result")
	}
}

// TestSortWideKeys tests 64-bit keys, which force the MSD path in auto mode
func TestSortWideKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	sizes := []int{100, 2000, 10000}
	key := func(k uint64) uint64 { return k }
	for _, n := range sizes {
		src := make([]uint64, n)
		for i := range src {
			src[i] = rng.Uint64()
		}
		tmp := make([]uint64, n)
		out := Sort(src, tmp, key, DestAny, ModeAuto)
		if !IsSorted(out, key) {
			t.Errorf("Sort(uint64, n=%d) produced unsorted result", n)
		}
	}
}

// TestSortNarrowKeys tests uint8 and uint16 keys, whose final digit is the
// whole key
func TestSortNarrowKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 4096
	b := make([]uint8, n)
	for i := range b {
		b[i] = uint8(rng.Intn(256))
	}
	btmp := make([]uint8, n)
	bout := Sort(b, btmp, func(k uint8) uint8 { return k }, DestAny, ModeAuto)
	if !IsSorted(bout, func(k uint8) uint8 { return k }) {
		t.Errorf("Sort(uint8) produced unsorted result")
	}

	w := make([]uint16, n)
	for i := range w {
		w[i] = uint16(rng.Intn(1 << 16))
	}
	wtmp := make([]uint16, n)
	wout := Sort(w, wtmp, func(k uint16) uint16 { return k }, DestAny, ModeLSD)
	if !IsSorted(wout, func(k uint16) uint16 { return k }) {
		t.Errorf("Sort(uint16) produced unsorted result")
	}
}

// TestSortKeys tests the bare-key convenience entry point
func TestSortKeys(t *testing.T) {
	src := []uint32{9, 2, 7, 2, 0}
	tmp := make([]uint32, len(src))
	out := SortKeys(src, tmp, DestSrc, ModeAuto)
	want := []uint32{0, 2, 2, 7, 9}
	if !slices.Equal(out, want) {
		t.Errorf("SortKeys = %v, want %v", out, want)
	}
}

// TestSortScratchTooShort tests the precondition panic
func TestSortScratchTooShort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Sort with short tmp did not panic")
		}
	}()
	src := []uint32{3, 1, 2}
	tmp := make([]uint32, 2)
	Sort(src, tmp, ident, DestAny, ModeAuto)
}

// TestSortLargeElements tests records bigger than 64 bits, which steer the
// auto heuristic toward MSD on large inputs
func TestSortLargeElements(t *testing.T) {
	type fat struct {
		key     uint32
		payload [3]uint64
	}
	rng := rand.New(rand.NewSource(6))
	n := 320000 // above 10000000/sizeof(fat)
	src := make([]fat, n)
	for i := range src {
		src[i] = fat{key: rng.Uint32()}
	}
	tmp := make([]fat, n)
	out := Sort(src, tmp, func(f fat) uint32 { return f.key }, DestAny, ModeAuto)
	if !IsSorted(out, func(f fat) uint32 { return f.key }) {
		t.Errorf("Sort(fat records) produced unsorted result")
	}
}

// TestSortUniformRandomLarge tests 2.5M uniform keys, which lands in the
// wide-radix MSD band, against the stdlib ordering
func TestSortUniformRandomLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 2.5M-element sort in short mode")
	}
	const n = 2500000
	rng := rand.New(rand.NewSource(99))
	data1 := make([]uint32, n)
	data2 := make([]uint32, n)
	for i := range data1 {
		v := rng.Uint32()
		data1[i] = v
		data2[i] = v
	}
	tmp := make([]uint32, n)
	out := Sort(data1, tmp, ident, DestAny, ModeAuto)
	slices.Sort(data2)
	if !slices.Equal(out, data2) {
		t.Errorf("2.5M-element sort does not match stdlib ordering")
	}
}

// TestIsSorted tests the IsSorted helper
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []uint32
		want bool
	}{
		{"empty", []uint32{}, true},
		{"single", []uint32{1}, true},
		{"sorted", []uint32{1, 2, 3, 4, 5}, true},
		{"unsorted", []uint32{1, 3, 2, 4, 5}, false},
		{"reverse", []uint32{5, 4, 3, 2, 1}, false},
		{"equal", []uint32{3, 3, 3, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSorted(tt.data, ident)
			if got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
