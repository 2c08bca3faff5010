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

// lsdRadixBits is the digit width of every LSD pass. The wider radix the
// MSD dispatcher sometimes picks does not pay off here: LSD always runs
// ceil(W/B) full passes over the whole input, so the larger counter table
// costs more than the saved passes return.
const lsdRadixBits = 8

// lsdSort sorts src stably, least significant digit first, ping-ponging
// between src and tmp, and reports which buffer holds the result (0 = src,
// 1 = tmp). src and tmp must have equal length. Each pass is a counting
// pass on one digit; stability of every pass makes the array fully sorted
// once the most significant digit has been processed. A pass whose digit
// puts all elements in one bucket swaps the buffer roles instead of
// scattering, so the data does not move.
func lsdSort[T any, K Key](src, tmp []T, key func(T) K) int {
	n := len(src)
	var counts [2 << lsdRadixBits]int
	s, d := src, tmp
	where := 0
	shift := uint(0)
	width := keyBits[K]()
	for {
		log2size := min(uint(lsdRadixBits), width)
		size := 1 << log2size
		mask := K(size - 1)
		h := counts[:2*size]
		clear(h)
		histogram(s, key, shift, mask, h)
		prefixSums(h, size)
		c := counts[:size]
		if degenerateBucket(c, size, n) < 0 {
			// Scatter.
			for i := 0; i < n; i++ {
				k := int((key(s[i]) >> shift) & mask)
				d[c[k]] = s[i]
				c[k]++
			}
			s, d = d, s
			where ^= 1
		}
		if width <= lsdRadixBits {
			return where
		}
		width -= lsdRadixBits
		shift += lsdRadixBits
	}
}
