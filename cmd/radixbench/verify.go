package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/subcommands"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-radixsort/internal/dists"
	"github.com/ajroetker/go-radixsort/rdx"
)

type verifyCmd struct {
	sizes string
	seed  uint64
}

func (*verifyCmd) Name() string { return "verify" }
func (*verifyCmd) Synopsis() string {
	return "cross-check every engine against every key distribution"
}

const verifyUsage = `verify [args]

Runs the stable engines (auto, lsd, msd) and the in-place engine over every
key distribution and checks sortedness, permutation integrity, stability,
and destination placement. Distributions run concurrently.
`

func (*verifyCmd) Usage() string { return verifyUsage }

func (c *verifyCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.sizes, "sizes", "1000,50000,300000", "comma-separated input sizes")
	fs.Uint64Var(&c.seed, "seed", 1, "rng seed")
}

func (c *verifyCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	sizes, err := parseSizes(c.sizes)
	if err != nil {
		log.Fatalf("bad -sizes: %v", err)
	}

	var eg errgroup.Group
	for i, name := range dists.Names() {
		gen, err := dists.ByName(name)
		if err != nil {
			log.Fatal(err)
		}
		seed := c.seed + uint64(i)<<32
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for _, n := range sizes {
				if err := verifyDist(gen, rng, n); err != nil {
					return fmt.Errorf("%s n=%d: %w", gen.Name(), n, err)
				}
			}
			log.Printf("%-12s ok (sizes %v)", gen.Name(), sizes)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Printf("FAIL: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(verifyCmd)

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d is not positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// multisetFingerprint hashes each record and sums the hashes. The sum is
// order-independent, so it is equal before and after sorting exactly when
// the sort permuted the input without dropping, duplicating, or corrupting
// records.
func multisetFingerprint(ps []pair8) uint64 {
	var buf [8]byte
	var sum uint64
	for _, p := range ps {
		binary.LittleEndian.PutUint32(buf[0:4], p.Key)
		binary.LittleEndian.PutUint32(buf[4:8], p.Index)
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}

// verifyDist runs every engine over one generated input and cross-checks
// the outputs.
func verifyDist(gen dists.KeyGen, rng *rand.Rand, n int) error {
	keys := gen.Keys(rng, n)
	orig := make([]pair8, n)
	for i, k := range keys {
		orig[i] = pair8{Key: k, Index: uint32(i)}
	}
	wantFingerprint := multisetFingerprint(orig)
	key := func(p pair8) uint32 { return p.Key }

	var stableOut []pair8
	for _, mode := range []rdx.Mode{rdx.ModeAuto, rdx.ModeLSD, rdx.ModeMSD} {
		for _, dest := range []rdx.Destination{rdx.DestSrc, rdx.DestTmp, rdx.DestAny} {
			src := make([]pair8, n)
			copy(src, orig)
			tmp := make([]pair8, n)
			out := rdx.Sort(src, tmp, key, dest, mode)

			if !rdx.IsSorted(out, key) {
				return fmt.Errorf("mode=%d dest=%d: output unsorted", mode, dest)
			}
			for i := 1; i < n; i++ {
				if out[i-1].Key == out[i].Key && out[i-1].Index >= out[i].Index {
					return fmt.Errorf("mode=%d dest=%d: stability broken at %d", mode, dest, i)
				}
			}
			if got := multisetFingerprint(out); got != wantFingerprint {
				return fmt.Errorf("mode=%d dest=%d: fingerprint mismatch: output is not a permutation of input", mode, dest)
			}
			if dest == rdx.DestSrc && &out[0] != &src[0] {
				return fmt.Errorf("mode=%d: result not in src buffer", mode)
			}
			if dest == rdx.DestTmp && &out[0] != &tmp[0] {
				return fmt.Errorf("mode=%d: result not in tmp buffer", mode)
			}

			// Every stable engine must produce the identical ordering.
			if stableOut == nil {
				stableOut = make([]pair8, n)
				copy(stableOut, out)
			} else {
				for i := range out {
					if out[i] != stableOut[i] {
						return fmt.Errorf("mode=%d dest=%d: ordering diverges from first stable engine at %d", mode, dest, i)
					}
				}
			}
		}
	}

	// In-place engine: unstable, so check key order and permutation only.
	data := make([]pair8, n)
	copy(data, orig)
	rdx.SortInPlace(data, key)
	if !rdx.IsSorted(data, key) {
		return fmt.Errorf("inplace: output unsorted")
	}
	if got := multisetFingerprint(data); got != wantFingerprint {
		return fmt.Errorf("inplace: fingerprint mismatch: output is not a permutation of input")
	}
	for i := range data {
		if data[i].Key != stableOut[i].Key {
			return fmt.Errorf("inplace: key sequence diverges from stable engines at %d", i)
		}
	}
	return nil
}
