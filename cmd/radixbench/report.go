package main

import (
	"runtime"
	"time"

	"github.com/google/renameio"
	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sys/cpu"
)

// Report is one bench invocation's output: machine fingerprint plus one
// CaseResult per (case, size, mode).
type Report struct {
	RunID       string       `json:"runId"`
	Timestamp   string       `json:"timestamp"`
	GoVersion   string       `json:"goVersion"`
	GOOS        string       `json:"goos"`
	GOARCH      string       `json:"goarch"`
	NumCPU      int          `json:"numCpu"`
	CPUFeatures []string     `json:"cpuFeatures"`
	Results     []CaseResult `json:"results"`
}

// CaseResult aggregates the timed runs of one benchmark point. Latencies
// are nanoseconds per sort.
type CaseResult struct {
	Case      string  `json:"case"`
	Dist      string  `json:"dist"`
	Size      int     `json:"size"`
	Mode      string  `json:"mode"`
	Record    string  `json:"record"`
	Runs      int     `json:"runs"`
	MinNs     int64   `json:"minNs"`
	P50Ns     int64   `json:"p50Ns"`
	P90Ns     int64   `json:"p90Ns"`
	P99Ns     int64   `json:"p99Ns"`
	MaxNs     int64   `json:"maxNs"`
	MeanNs    float64 `json:"meanNs"`
	StddevNs  float64 `json:"stddevNs"`
	MBPerSec  float64 `json:"mbPerSec"`
	ElemBytes int     `json:"elemBytes"`
}

// newReport stamps the run environment.
func newReport() *Report {
	return &Report{
		RunID:       uuid.New().String(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		GoVersion:   runtime.Version(),
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		CPUFeatures: cpuFeatures(),
	}
}

// cpuFeatures lists the ISA extensions that matter for sort throughput
// (vector width for the scatter loops, popcount for the histograms).
// Radix sort is memory-bound, so this mostly serves to group reports from
// like machines when comparing runs.
func cpuFeatures() []string {
	var fs []string
	add := func(name string, has bool) {
		if has {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64":
		add("sse42", cpu.X86.HasSSE42)
		add("popcnt", cpu.X86.HasPOPCNT)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("bmi2", cpu.X86.HasBMI2)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("atomics", cpu.ARM64.HasATOMICS)
	}
	return fs
}

// writeReport writes the report as JSON, atomically so a crashed run never
// leaves a truncated file behind.
func writeReport(path string, r *Report) error {
	data, err := sonnet.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return renameio.WriteFile(path, data, 0o644)
}

// readReport loads a report written by writeReport.
func readReport(data []byte) (*Report, error) {
	r := new(Report)
	if err := sonnet.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}
