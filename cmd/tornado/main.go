// Command tornado shows the tornado scene in a window.
//
// Space advances tornado -> house -> chase. Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/tornado/internal/app"
	"github.com/phanxgames/tornado/view"
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
	flag.Parse()

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Config
	return view.Run(a.World, view.RunConfig{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		ShowHUD:  cfg.Window.ShowHUD,
		Viewport: cfg.Viewport(),
	}, a.Log.Named("view"))
}
