package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/ghodss/yaml"
	"github.com/google/subcommands"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-radixsort/internal/dists"
	"github.com/ajroetker/go-radixsort/rdx"
)

type benchCmd struct {
	configPath string
	outPath    string
	dbPath     string
	runs       int
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "run the configured sort benchmarks" }
func (*benchCmd) Usage() string    { return "" }

func (c *benchCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "c", "", "path to input config (YAML); empty runs the built-in default")
	fs.StringVar(&c.outPath, "o", "bench-results.json", "path to write the JSON report")
	fs.StringVar(&c.dbPath, "db", "", "optional sqlite database to append the report to")
	fs.IntVar(&c.runs, "runs", 0, "override the per-case run count")
}

func (c *benchCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	start := time.Now()
	config := DefaultConfig()
	if c.configPath != "" {
		configBytes, err := os.ReadFile(c.configPath)
		if err != nil {
			log.Fatalf("failed to read config: %v", err)
		}
		config = Config{}
		if err := yaml.Unmarshal(configBytes, &config); err != nil {
			log.Fatalf("failed to decode config: %v", err)
		}
	}
	if c.runs > 0 {
		for i := range config.Cases {
			config.Cases[i].Runs = c.runs
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	report, err := runBench(&config)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeReport(c.outPath, report); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	if c.dbPath != "" {
		if err := appendHistory(c.dbPath, report); err != nil {
			log.Fatalf("failed to append to history db: %v", err)
		}
	}
	log.Printf("run %s: %d results -> %s (%v)",
		report.RunID, len(report.Results), c.outPath, time.Since(start).Round(time.Millisecond))
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(benchCmd)

// pair8 and rec16 are the non-trivial element shapes benchmarks sort:
// a tagged key and a small record.
type pair8 struct {
	Key   uint32
	Index uint32
}

type rec16 struct {
	Key     uint32
	Payload [12]byte
}

// runBench executes every (case, size, mode) point and aggregates timings.
func runBench(config *Config) (*Report, error) {
	report := newReport()
	for ci := range config.Cases {
		cc := &config.Cases[ci]
		gen, err := dists.ByName(cc.Dist)
		if err != nil {
			return nil, err
		}
		// Per-case stream: stable under case reordering.
		rng := rand.New(rand.NewSource(config.Seed + uint64(ci)<<32))
		for _, size := range cc.Sizes {
			keys := gen.Keys(rng, size)
			for _, mode := range cc.Modes {
				res, err := runPoint(cc, keys, size, mode)
				if err != nil {
					return nil, fmt.Errorf("case %q size %d mode %s: %w", cc.Name, size, mode, err)
				}
				report.Results = append(report.Results, res)
				log.Printf("%-20s n=%-9d %-7s %-6s p50=%s mean=%s %.0f MB/s",
					cc.Name, size, mode, cc.Record,
					time.Duration(res.P50Ns), time.Duration(int64(res.MeanNs)), res.MBPerSec)
			}
		}
	}
	return report, nil
}

// runPoint times one (case, size, mode) point.
func runPoint(cc *CaseConfig, keys []uint32, size int, mode string) (CaseResult, error) {
	var timeOnce func() (time.Duration, error)
	var elemBytes int
	switch cc.Record {
	case "key32":
		timeOnce, elemBytes = timerFor(keys, func(k uint32) uint32 { return k }, mode), 4
	case "pair8":
		src := make([]pair8, size)
		for i, k := range keys {
			src[i] = pair8{Key: k, Index: uint32(i)}
		}
		timeOnce, elemBytes = timerFor(src, func(p pair8) uint32 { return p.Key }, mode), 8
	case "rec16":
		src := make([]rec16, size)
		for i, k := range keys {
			src[i] = rec16{Key: k}
		}
		timeOnce, elemBytes = timerFor(src, func(r rec16) uint32 { return r.Key }, mode), 16
	default:
		return CaseResult{}, fmt.Errorf("unknown record shape %q", cc.Record)
	}

	for i := 0; i < cc.Warmup; i++ {
		if _, err := timeOnce(); err != nil {
			return CaseResult{}, err
		}
	}

	hist := hdrhistogram.New(1, int64(60*time.Second), 3)
	samples := make([]float64, 0, cc.Runs)
	for i := 0; i < cc.Runs; i++ {
		d, err := timeOnce()
		if err != nil {
			return CaseResult{}, err
		}
		hist.RecordValue(d.Nanoseconds())
		samples = append(samples, float64(d.Nanoseconds()))
	}

	meanNs := stat.Mean(samples, nil)
	bytesPerSort := float64(size) * float64(elemBytes)
	return CaseResult{
		Case:      cc.Name,
		Dist:      cc.Dist,
		Size:      size,
		Mode:      mode,
		Record:    cc.Record,
		Runs:      cc.Runs,
		MinNs:     hist.Min(),
		P50Ns:     hist.ValueAtQuantile(50),
		P90Ns:     hist.ValueAtQuantile(90),
		P99Ns:     hist.ValueAtQuantile(99),
		MaxNs:     hist.Max(),
		MeanNs:    meanNs,
		StddevNs:  stat.StdDev(samples, nil),
		MBPerSec:  bytesPerSort / (meanNs / 1e9) / (1 << 20),
		ElemBytes: elemBytes,
	}, nil
}

// timerFor builds the per-run timing closure for one element shape. Each
// run restores the unsorted input, times the sort alone, and checks the
// output so a broken engine cannot report a fast lie.
func timerFor[T any](orig []T, key func(T) uint32, mode string) func() (time.Duration, error) {
	src := make([]T, len(orig))
	tmp := make([]T, len(orig))
	return func() (time.Duration, error) {
		copy(src, orig)
		var (
			out     []T
			elapsed time.Duration
		)
		if mode == "inplace" {
			start := time.Now()
			rdx.SortInPlace(src, key)
			elapsed = time.Since(start)
			out = src
		} else {
			start := time.Now()
			out = rdx.Sort(src, tmp, key, rdx.DestAny, benchMode(mode))
			elapsed = time.Since(start)
		}
		if !rdx.IsSorted(out, key) {
			return 0, fmt.Errorf("sorted output check failed")
		}
		return elapsed, nil
	}
}

func benchMode(mode string) rdx.Mode {
	switch mode {
	case "lsd":
		return rdx.ModeLSD
	case "msd":
		return rdx.ModeMSD
	default:
		return rdx.ModeAuto
	}
}
