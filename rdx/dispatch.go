package rdx

import (
	"os"
	"strconv"
)

const (
	// radixBitsNarrow/Wide are the two digit widths the dispatcher picks
	// between. 8-bit digits are the default; 11-bit digits win in the input
	// ranges below, where the 2048-entry counter tables amortize better.
	radixBitsNarrow = 8
	radixBitsWide   = 11

	// fallbackThresholdNarrow/Wide: MSD partitions below this size are
	// finished by the fallback sorter. Scales with the radix width.
	fallbackThresholdNarrow = 128
	fallbackThresholdWide   = 256

	// maxRadixSize is the largest bucket count any single pass can use.
	maxRadixSize = 1 << radixBitsWide
)

// wideRadixDisabled is set once at init from RADIXSORT_NO_WIDE_RADIX.
var wideRadixDisabled bool

func init() {
	wideRadixDisabled = NoWideRadixEnv()
}

// NoWideRadixEnv checks if the RADIXSORT_NO_WIDE_RADIX environment variable
// is set. When set, the dispatcher pins the radix to 8 bits regardless of
// input size. This is useful for debugging and for machines whose L1 cache
// cannot hold the 11-bit counter tables.
func NoWideRadixEnv() bool {
	val := os.Getenv("RADIXSORT_NO_WIDE_RADIX")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// msdParams picks the MSD digit width and fallback threshold for n elements.
// The 4000..60000 and 2000000..9000000 bands are experimentally chosen.
func msdParams(n int) (bits uint, threshold int) {
	bits, threshold = radixBitsNarrow, fallbackThresholdNarrow
	if wideRadixDisabled {
		return bits, threshold
	}
	if n > 4000 && n < 60000 {
		bits, threshold = radixBitsWide, fallbackThresholdWide
	}
	if n > 2000000 && n < 9000000 {
		bits, threshold = radixBitsWide, fallbackThresholdWide
	}
	return bits, threshold
}
