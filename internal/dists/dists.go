// Package dists generates synthetic key distributions for benchmarking and
// verification. Radix sort cost depends on how keys spread across digit
// buckets, so the interesting inputs are not just uniform noise: constant
// digits skip passes, clustered values stress the degenerate-bucket checks,
// and presorted runs measure pure scatter bandwidth.
package dists

import (
	"fmt"
	"slices"

	"golang.org/x/exp/rand"
)

// KeyGen generates n 32-bit keys using rng.
type KeyGen interface {
	Name() string
	Keys(rng *rand.Rand, n int) []uint32
}

// UniformGen draws keys uniformly from [Low, High].
type UniformGen struct {
	_    struct{}
	Low  uint32
	High uint32
}

func (g UniformGen) Name() string { return "uniform" }

func (g UniformGen) Keys(rng *rand.Rand, n int) []uint32 {
	d := make([]uint32, n)
	span := uint64(g.High) - uint64(g.Low) + 1
	for i := range d {
		d[i] = g.Low + uint32(rng.Uint64n(span))
	}
	return d
}

// SequentialGen emits 0, 1, 2, ... in order. Every digit pass still has to
// scatter, but the scatter is a straight copy.
type SequentialGen struct {
	_ struct{}
}

func (g SequentialGen) Name() string { return "sequential" }

func (g SequentialGen) Keys(rng *rand.Rand, n int) []uint32 {
	d := make([]uint32, n)
	for i := range d {
		d[i] = uint32(i)
	}
	return d
}

// ReversedGen emits a strictly descending run, the worst case for presorted
// detection and a maximal-displacement permutation.
type ReversedGen struct {
	_ struct{}
}

func (g ReversedGen) Name() string { return "reversed" }

func (g ReversedGen) Keys(rng *rand.Rand, n int) []uint32 {
	d := make([]uint32, n)
	for i := range d {
		d[i] = uint32(n - i)
	}
	return d
}

// EqualGen emits one constant key. Every digit is degenerate, so a sort
// should move no data at all.
type EqualGen struct {
	_     struct{}
	Value uint32
}

func (g EqualGen) Name() string { return "equal" }

func (g EqualGen) Keys(rng *rand.Rand, n int) []uint32 {
	d := make([]uint32, n)
	for i := range d {
		d[i] = g.Value
	}
	return d
}

// SortedGen draws uniform keys and presorts them.
type SortedGen struct {
	_ struct{}
}

func (g SortedGen) Name() string { return "sorted" }

func (g SortedGen) Keys(rng *rand.Rand, n int) []uint32 {
	d := UniformGen{High: ^uint32(0)}.Keys(rng, n)
	slices.Sort(d)
	return d
}

// ClusteredGen draws keys from a small set of Distinct random centers.
// Most digit buckets stay empty and whole passes go degenerate.
type ClusteredGen struct {
	_        struct{}
	Distinct int
}

func (g ClusteredGen) Name() string { return "clustered" }

func (g ClusteredGen) Keys(rng *rand.Rand, n int) []uint32 {
	distinct := g.Distinct
	if distinct <= 0 {
		distinct = 16
	}
	centers := make([]uint32, distinct)
	for i := range centers {
		centers[i] = rng.Uint32()
	}
	d := make([]uint32, n)
	for i := range d {
		d[i] = centers[rng.Intn(distinct)]
	}
	return d
}

// SkewedGen draws Zipf-distributed keys: a few values dominate, the rest
// form a long tail. Bucket sizes per digit are heavily unbalanced.
type SkewedGen struct {
	_ struct{}
	S float64 // Zipf exponent, > 1; defaults to 1.3
}

func (g SkewedGen) Name() string { return "skewed" }

func (g SkewedGen) Keys(rng *rand.Rand, n int) []uint32 {
	s := g.S
	if s <= 1 {
		s = 1.3
	}
	z := rand.NewZipf(rng, s, 1, uint64(^uint32(0)))
	d := make([]uint32, n)
	for i := range d {
		d[i] = uint32(z.Uint64())
	}
	return d
}

// NarrowGen draws uniform keys confined to the low Bits bits. The untouched
// high digits make the leading passes degenerate.
type NarrowGen struct {
	_    struct{}
	Bits uint
}

func (g NarrowGen) Name() string { return "narrow" }

func (g NarrowGen) Keys(rng *rand.Rand, n int) []uint32 {
	bits := g.Bits
	if bits == 0 || bits > 32 {
		bits = 8
	}
	mask := uint32(1)<<bits - 1
	d := make([]uint32, n)
	for i := range d {
		d[i] = rng.Uint32() & mask
	}
	return d
}

// ByName returns the generator registered under name, using each
// generator's default parameters.
func ByName(name string) (KeyGen, error) {
	switch name {
	case "uniform":
		return UniformGen{High: ^uint32(0)}, nil
	case "sequential":
		return SequentialGen{}, nil
	case "reversed":
		return ReversedGen{}, nil
	case "equal":
		return EqualGen{Value: 0xDEADBEEF}, nil
	case "sorted":
		return SortedGen{}, nil
	case "clustered":
		return ClusteredGen{Distinct: 16}, nil
	case "skewed":
		return SkewedGen{}, nil
	case "narrow":
		return NarrowGen{Bits: 8}, nil
	}
	return nil, fmt.Errorf("unknown key distribution %q", name)
}

// Names lists the registered distribution names in ByName order.
func Names() []string {
	return []string{"uniform", "sequential", "reversed", "equal", "sorted", "clustered", "skewed", "narrow"}
}
