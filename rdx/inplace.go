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

// inplaceLimit sizes the stack temporary handed to fallbackSort for
// sub-threshold partitions. It is the larger of the two fallback
// thresholds, since an array length cannot follow the runtime radix choice.
const inplaceLimit = fallbackThresholdWide

// msdSortInPlace sorts src by the width low bits of its keys using no
// second buffer, most significant digit first. Elements are rearranged by
// a cycle-following permutation: each bucket keeps a write cursor (c) and
// an end boundary (d); an element sitting at a cursor is chased to its home
// bucket, displacing that bucket's next occupant, until the chain closes in
// the cursor's own bucket. Every cycle of misplaced elements rotates
// exactly once, so each digit pass is O(n) moves. Ties within a bucket land
// in arbitrary order, which is what makes this engine unstable.
func msdSortInPlace[T any, K Key](src []T, key func(T) K, width, bits uint, threshold int) {
	n := len(src)
	if n < threshold {
		var tmp [inplaceLimit]T
		fallbackSort(src, tmp[:n], key, 0)
		return
	}
	log2size := min(bits, width)
	size := 1 << log2size
	offset := width - log2size
	mask := K(size - 1)
	// Cursors occupy the low half of the table, bucket ends the high half.
	var counts [2 * maxRadixSize]int
	h := counts[:2*size]
	histogram(src, key, offset, mask, h)
	prefixSums(h, size)
	c := counts[:size]
	d := counts[size : 2*size]
	for j := 0; j+1 < size; j++ {
		d[j] = c[j+1]
	}
	d[size-1] = n
	if degenerateBucket(c, size, n) < 0 {
		for j := 0; j < size; j++ {
			for ; c[j] != d[j]; c[j]++ {
				k := c[j]
				home := int((key(src[k]) >> offset) & mask)
				for j != home {
					t := src[c[home]]
					src[c[home]] = src[k]
					c[home]++
					src[k] = t
					home = int((key(t) >> offset) & mask)
				}
			}
		}
	}
	if offset > 0 {
		b := 0
		for j := 0; j < size; j++ {
			e := d[j]
			switch e - b {
			case 0, 1:
			case 2:
				if key(src[b+1]) < key(src[b]) {
					src[b], src[b+1] = src[b+1], src[b]
				}
			default:
				msdSortInPlace(src[b:e], key, offset, bits, threshold)
			}
			b = e
		}
	}
}
