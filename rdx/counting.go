package rdx

// Counting pass shared by the LSD, MSD, and in-place engines: a digit
// histogram, exclusive prefix sums forming the bucket boundary table, and
// the degenerate-digit check.

// histogram counts the digit (key >> shift) & mask of every element into
// interleaved counter pairs: elements at even source positions increment
// h[2*d], elements at odd positions h[2*d+1]. Two elements per iteration
// across independent counters mitigates store-to-load stalls on runs of
// equal digits. h must hold 2*(mask+1) zeroed counters.
func histogram[T any, K Key](src []T, key func(T) K, shift uint, mask K, h []int) {
	n := len(src)
	for i, m := 0, n/2; i < m; i++ {
		k0 := int((key(src[2*i]) >> shift) & mask)
		k1 := int((key(src[2*i+1]) >> shift) & mask)
		h[2*k0]++
		h[2*k1+1]++
	}
	if n&1 != 0 {
		h[2*int((key(src[n-1])>>shift)&mask)]++
	}
}

// prefixSums compacts the interleaved counter pairs in h[:2*size] into
// exclusive prefix sums in h[:size]. Writes trail reads, so the compaction
// is safe in place.
func prefixSums(h []int, size int) {
	s := 0
	for j := 0; j < size; j++ {
		t := s
		s += h[2*j] + h[2*j+1]
		h[j] = t
	}
}

// degenerateBucket reports the digit value whose bucket covers all n
// elements, or -1 if no single bucket does. c[:size] must hold exclusive
// prefix sums. All elements share the final digit value exactly when every
// earlier bucket is empty, which leaves the last prefix sum at zero.
func degenerateBucket(c []int, size, n int) int {
	for j := 0; j+1 < size; j++ {
		if c[j+1]-c[j] == n {
			return j
		}
	}
	if c[size-1] == 0 {
		return size - 1
	}
	return -1
}
