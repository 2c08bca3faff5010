package rdx

import "unsafe"

// Key is a constraint for the unsigned integer key types the engine sorts
// by. The key's bit width determines how many digit passes a sort needs.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Mode selects the sorting strategy for Sort.
type Mode int

const (
	// ModeLSD forces least-significant-digit radix sort.
	ModeLSD Mode = 0

	// ModeMSD forces most-significant-digit radix sort.
	ModeMSD Mode = 1

	// ModeAuto lets a heuristic choose per call. Any Mode value other than
	// ModeLSD and ModeMSD behaves like ModeAuto.
	ModeAuto Mode = -1
)

// Destination selects which buffer Sort leaves the result in.
type Destination int

const (
	// DestSrc forces the result into the src buffer.
	DestSrc Destination = 0

	// DestTmp forces the result into the tmp buffer.
	DestTmp Destination = 1

	// DestAny lets Sort leave the result in whichever buffer avoids a final
	// copy. Any Destination value other than DestSrc and DestTmp behaves
	// like DestAny.
	DestAny Destination = -1
)

// keyBits returns the width of K in bits.
func keyBits[K Key]() uint {
	var k K
	return uint(unsafe.Sizeof(k)) * 8
}

// elemSize returns the size of T in bytes.
func elemSize[T any]() uintptr {
	var e T
	return unsafe.Sizeof(e)
}
