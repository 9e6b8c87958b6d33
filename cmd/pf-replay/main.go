// Command pf-replay re-simulates a recorded run headlessly and prints its outcome
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/pacific-fighter/app"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/replay"
)

func main() {
	debug := flag.Bool("debug", false, "write logs/pacific-fighter.log")
	expect := flag.Int("expect-score", -1, "exit with status 2 unless the final score matches")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: pf-replay [flags] <replay file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if logFile := app.SetupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	os.Exit(run(os.Stdout, flag.Arg(0), *expect))
}

// run replays path and writes a summary to out, returning the exit status
func run(out io.Writer, path string, expect int) int {
	rep, err := replay.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load replay: %v\n", err)
		return 1
	}

	res := replay.Run(rep, engine.Sinks{})
	fmt.Fprintf(out, "seed       %d\n", rep.Header.Seed)
	fmt.Fprintf(out, "frames     %d (%d restarts)\n", res.Frames, res.Restarts)
	fmt.Fprintf(out, "game time  %s\n", res.Now)
	fmt.Fprintf(out, "cycles     %d\n", res.Cycles)
	fmt.Fprintf(out, "score      %d\n", res.Score)
	fmt.Fprintf(out, "best       %d\n", res.BestScore)
	fmt.Fprintf(out, "game over  %v\n", res.GameOver)

	if expect >= 0 && res.Score != expect {
		fmt.Fprintf(out, "score mismatch: expected %d, got %d\n", expect, res.Score)
		return 2
	}
	return 0
}
