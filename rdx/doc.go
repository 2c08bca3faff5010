// Package rdx provides a generic, allocation-free radix sort for slices of
// fixed-size records ordered by an unsigned integer key.
//
// The engine sorts any element type T by a caller-supplied key function
// func(T) K, where K is an unsigned integer type. It is built for
// performance-critical workloads (game engines, renderers, simulation)
// where comparison sorting is too slow for large arrays of small records.
//
// # Algorithm
//
// Sort is a hybrid of two stable out-of-place strategies picked per call:
//   - LSD radix sort: byte-wide counting passes from the least significant
//     digit up, ping-ponging between the caller's two buffers
//   - MSD radix sort: recursive partitioning from the most significant
//     digit down, with single-element and pair buckets resolved directly
//     and small partitions finished by an insertion/merge fallback
//
// SortInPlace always partitions MSD-first and rearranges elements with a
// cycle-following permutation, so it needs no second buffer but does not
// preserve the order of equal keys.
//
// Both paths share a counting pass that detects degenerate digits (all
// elements in one bucket) and skips the data movement for that digit
// entirely, which makes heavily clustered or already-bucketed inputs cheap.
//
// # Keys
//
// Keys are unsigned integers compared in natural order. Signed integers and
// IEEE floats sort correctly after remapping through the bijections in this
// package (Int32Key, Float64Key, ...); Descending complements a key to
// reverse the order. Records usually carry the key precomputed:
//
//	type Item struct {
//	    Key   uint32
//	    Index uint32
//	}
//
//	sorted := rdx.Sort(items, scratch, func(it Item) uint32 { return it.Key },
//	    rdx.DestAny, rdx.ModeAuto)
//
// # Memory
//
// The engine allocates nothing. Sort borrows the caller's src and tmp
// buffers for the duration of the call; all other state is stack-local
// counter tables bounded by the radix width (at most 2·2048 counters) and,
// on the in-place path, one fixed-size temporary for sub-threshold
// partitions. Concurrent calls are safe as long as each call owns its
// buffers exclusively.
//
// # Performance
//
// Radix width is normally 8 bits, widened to 11 for input sizes where the
// larger buckets amortize better; set RADIXSORT_NO_WIDE_RADIX to pin it to
// 8. The counting pass is unrolled two elements per iteration across
// interleaved counter pairs to hide store-to-load latency. Go has no
// portable prefetch intrinsic, so the scatter loops lean on hardware
// prefetchers instead of software hints.
package rdx
