package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pacific-fighter/app"
	"github.com/lixenwraith/pacific-fighter/terminal"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			rt.Close()
			fmt.Fprintf(os.Stderr, "\nPACIFIC-FIGHTER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	host := terminal.NewHost(screen, rt.Session, rt.HUD, rt.Effects, rt.Recorder, opts.Debug)
	host.Run()
}
