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

// Command radixbench measures and verifies the radix sort engines.
//
// bench runs configured benchmark cases and writes a JSON report (and
// optionally appends to a sqlite history database); verify cross-checks
// every engine against every key distribution; history lists recorded
// results; dists lists the available key distributions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/google/subcommands"

	"github.com/ajroetker/go-radixsort/internal/dists"
)

type distsCmd struct{}

func (*distsCmd) Name() string     { return "dists" }
func (*distsCmd) Synopsis() string { return "list the available key distributions" }
func (*distsCmd) Usage() string    { return "" }

func (*distsCmd) SetFlags(fs *flag.FlagSet) {}

func (*distsCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	for _, name := range dists.Names() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(distsCmd)

func main() {
	var (
		cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
		memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	)

	log.SetPrefix("radixbench: ")
	log.SetFlags(0)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(benchCmd), "")
	subcommands.Register(new(verifyCmd), "")
	subcommands.Register(new(historyCmd), "")
	subcommands.Register(new(distsCmd), "")
	subcommands.ImportantFlag("cpuprofile")
	subcommands.ImportantFlag("memprofile")

	flag.Parse()

	ret := 0
	func() {
		if *cpuProfile != "" {
			f, err := os.Create(*cpuProfile)
			if err != nil {
				log.Fatal("could not create CPU profile: ", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				log.Fatal("could not start CPU profile: ", err)
			}
			defer pprof.StopCPUProfile()
		}

		ret = int(subcommands.Execute(context.Background()))

		if *memProfile != "" {
			f, err := os.Create(*memProfile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
	}()

	os.Exit(ret)
}
