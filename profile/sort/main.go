// Profiling:
// go build ./profile/sort
// go tool pprof -http=":8000" -nodefraction=0.001 ./sort mem.pprof
//
// The engine is allocation-free, so the allocation profile should show the
// setup slices below and nothing inside rdx.

package main

import (
	"math/rand"

	"github.com/pkg/profile"

	"github.com/ajroetker/go-radixsort/rdx"
)

type entity struct {
	key   uint32
	index uint32
}

func main() {
	rounds := 200
	n := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, n)
	p.Stop()
}

func run(rounds, n int) {
	rng := rand.New(rand.NewSource(1))
	orig := make([]entity, n)
	for i := range orig {
		orig[i] = entity{key: rng.Uint32(), index: uint32(i)}
	}
	src := make([]entity, n)
	tmp := make([]entity, n)
	key := func(e entity) uint32 { return e.key }

	for r := range rounds {
		copy(src, orig)
		if r%2 == 0 {
			rdx.Sort(src, tmp, key, rdx.DestAny, rdx.ModeAuto)
		} else {
			rdx.SortInPlace(src, key)
		}
	}
}
