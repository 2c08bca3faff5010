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

import "math"

// NaNOrder controls where Float32Key and Float64Key place NaN values
// relative to every ordered float.
type NaNOrder int

const (
	// NaNTop places every NaN above +Inf.
	NaNTop NaNOrder = iota

	// NaNBottom places every NaN below -Inf.
	NaNBottom

	// NaNUnordered applies no adjustment: NaNs with the sign bit set map
	// below -Inf and the rest above +Inf.
	NaNUnordered
)

// Int8Key maps a signed integer to an unsigned key preserving signed order.
func Int8Key(x int8) uint8 {
	return uint8(x) ^ 1<<7
}

// Int16Key maps a signed integer to an unsigned key preserving signed order.
func Int16Key(x int16) uint16 {
	return uint16(x) ^ 1<<15
}

// Int32Key maps a signed integer to an unsigned key preserving signed order.
// The mapping offsets values by the signed minimum, so the most negative
// int32 becomes key 0 and the most positive becomes the maximum key.
func Int32Key(x int32) uint32 {
	return uint32(x) ^ 1<<31
}

// Int64Key maps a signed integer to an unsigned key preserving signed order.
func Int64Key(x int64) uint64 {
	return uint64(x) ^ 1<<63
}

// Float32Key maps an IEEE-754 binary32 value to an unsigned key whose
// natural order matches the float order: negative values have all bits
// flipped, non-negative values have the sign bit set. Note -0.0 maps
// strictly below +0.0 even though they compare equal as floats.
//
// nan picks the NaN placement. NaNTop subtracts the NaN code count (2^23-1)
// so every NaN lands above +Inf; NaNBottom adds it so every NaN lands below
// -Inf; NaNUnordered leaves NaNs split across both ends.
func Float32Key(x float32, nan NaNOrder) uint32 {
	b := math.Float32bits(x)
	b ^= uint32(int32(b)>>31) | 1<<31
	switch nan {
	case NaNTop:
		return b - 0x007FFFFF
	case NaNBottom:
		return b + 0x007FFFFF
	default:
		return b
	}
}

// Float64Key maps an IEEE-754 binary64 value to an unsigned key whose
// natural order matches the float order. See Float32Key; the binary64 NaN
// code count is 2^52-1.
func Float64Key(x float64, nan NaNOrder) uint64 {
	b := math.Float64bits(x)
	b ^= uint64(int64(b)>>63) | 1<<63
	switch nan {
	case NaNTop:
		return b - 0x000FFFFFFFFFFFFF
	case NaNBottom:
		return b + 0x000FFFFFFFFFFFFF
	default:
		return b
	}
}

// Descending complements a key so that sorting ascends in complemented key
// space and therefore descends in the original order.
func Descending[K Key](k K) K {
	return ^k
}
