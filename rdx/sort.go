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

// Sort sorts src stably by ascending key and returns the slice holding the
// result. tmp is caller-owned scratch of at least len(src) elements; Sort
// panics before touching either buffer if it is shorter. Both buffers are
// borrowed only for the duration of the call, and the result is left in the
// one dest selects (DestAny picks whichever avoids a final relocation copy).
//
// mode forces the LSD or MSD strategy; ModeAuto chooses per call. MSD is
// generally faster for small inputs, for keys wider than 40 bits, and for
// large elements on large inputs; LSD wins elsewhere. The heuristic
// thresholds (1500 elements, 10M bytes of element data) are experimentally
// chosen.
func Sort[T any, K Key](src, tmp []T, key func(T) K, dest Destination, mode Mode) []T {
	n := len(src)
	if len(tmp) < n {
		panic("rdx: tmp shorter than src")
	}
	tmp = tmp[:n]
	if n == 0 {
		if dest == DestTmp {
			return tmp
		}
		return src
	}
	kb := keyBits[K]()
	if mode != ModeLSD && (mode == ModeMSD || n < 1500 || kb > 40 ||
		(elemSize[T]() > 8 && n > 10000000/int(elemSize[T]()))) {
		bits, threshold := msdParams(n)
		// MSD tracks an explicit 0/1 destination; don't-care lands in src.
		destination := 0
		if dest == DestTmp {
			destination = 1
		}
		return msdSort(src, tmp, key, kb, bits, threshold, destination)
	}
	where := lsdSort(src, tmp, key)
	// The only possibly wasted copy: the caller forced a destination and
	// the passes left the result in the other buffer.
	switch {
	case dest == DestSrc && where != 0:
		copy(src, tmp)
		return src
	case dest == DestTmp && where != 1:
		copy(tmp, src)
		return tmp
	case where != 0:
		return tmp
	default:
		return src
	}
}

// SortKeys sorts a slice of bare keys stably, treating each element as its
// own key. See Sort.
func SortKeys[K Key](src, tmp []K, dest Destination, mode Mode) []K {
	return Sort(src, tmp, func(k K) K { return k }, dest, mode)
}

// SortInPlace sorts data by ascending key within the one buffer, using the
// MSD engine's cycle-following permutation. It allocates nothing and needs
// no scratch buffer, but it is not stable: equal keys come out in arbitrary
// order.
func SortInPlace[T any, K Key](data []T, key func(T) K) {
	n := len(data)
	if n <= 1 {
		return
	}
	bits, threshold := msdParams(n)
	msdSortInPlace(data, key, keyBits[K](), bits, threshold)
}

// IsSorted reports whether data is ordered by ascending key.
func IsSorted[T any, K Key](data []T, key func(T) K) bool {
	for i := 1; i < len(data); i++ {
		if key(data[i]) < key(data[i-1]) {
			return false
		}
	}
	return true
}
