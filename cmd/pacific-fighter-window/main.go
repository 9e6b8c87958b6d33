package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/pacific-fighter/app"
	"github.com/lixenwraith/pacific-fighter/window"
)

func main() {
	var opts app.Options
	app.RegisterFlags(flag.CommandLine, &opts)
	flag.Parse()

	if logFile := app.SetupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	rt, err := app.Setup(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	g := window.NewGame(rt.Session, rt.HUD, rt.Effects, rt.Recorder, opts.Debug)
	if err := g.Run("Pacific Fighter"); err != nil {
		fmt.Fprintf(os.Stderr, "Window closed with error: %v\n", err)
	}
}
