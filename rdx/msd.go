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

// msdSort sorts src stably by the width low bits of its keys into the
// buffer selected by destination (0 = src, 1 = dst), most significant digit
// first, and returns the slice holding the result. src and dst must have
// equal length and destination must be 0 or 1.
//
// Partitions below threshold are finished by fallbackSort. A degenerate
// digit (all elements in one bucket) swaps the buffer roles and flips
// destination in place of the scatter, then descends over the whole range
// on the next digit. Otherwise buckets of size 1 and 2 are resolved
// directly into the output buffer and larger buckets recurse with the
// roles flipped, keeping every level of the recursion stable.
func msdSort[T any, K Key](src, dst []T, key func(T) K, width, bits uint, threshold, destination int) []T {
	n := len(src)
	if n < threshold {
		return fallbackSort(src, dst, key, destination)
	}
	log2size := min(bits, width)
	size := 1 << log2size
	offset := width - log2size
	mask := K(size - 1)
	var counts [2 * maxRadixSize]int
	h := counts[:2*size]
	histogram(src, key, offset, mask, h)
	prefixSums(h, size)
	c := counts[:size]
	deg := degenerateBucket(c, size, n)
	if deg >= 0 {
		// All keys share this digit: the pass moves nothing, so swapping
		// the buffer roles stands in for the scatter.
		src, dst = dst, src
		destination ^= 1
	} else {
		// Scatter. c[k] walks from bucket k's start to its end.
		for i := 0; i < n; i++ {
			k := int((key(src[i]) >> offset) & mask)
			dst[c[k]] = src[i]
			c[k]++
		}
	}
	out := src
	if destination != 0 {
		out = dst
	}
	if offset > 0 {
		if deg >= 0 {
			msdSort(dst, src, key, offset, bits, threshold, destination^1)
		} else {
			b := 0
			for j := 0; j < size; j++ {
				e := c[j]
				switch e - b {
				case 0:
				case 1:
					out[b] = dst[b]
				case 2:
					lo, hi := dst[b], dst[b+1]
					if key(hi) < key(lo) {
						lo, hi = hi, lo
					}
					out[b], out[b+1] = lo, hi
				default:
					msdSort(dst[b:e], src[b:e], key, offset, bits, threshold, destination^1)
				}
				b = e
			}
		}
	}
	if offset == 0 && destination == 0 {
		copy(src, dst)
	}
	return out
}
