// Command tornado-term renders the tornado scene in the terminal.
//
// Space advances tornado -> house -> chase. q, Esc or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tornado/internal/app"
	"github.com/phanxgames/tornado/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts app.Options
	opts.RegisterFlags(flag.CommandLine)
	flag.StringVar(&opts.LogFile, "log", "tornado-term.log", "log file; the terminal is owned by the renderer")
	flag.Parse()

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tick := time.Duration(a.Config.Simulation.TickDelta * float64(time.Second))
	err = term.Run(ctx, a.World, screen, tick, a.Log.Named("term"))
	if err == context.Canceled {
		return nil
	}
	return err
}
