package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/diegok/pingpong/internal/app"
	"github.com/diegok/pingpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: pingpong needs an interactive terminal")
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pingpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --fps <n>       Frames per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --hold <n>      Frames a key stays held after its last press (default: 8)")
	fmt.Fprintln(os.Stderr, "  --seed <n>      Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --mute          Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>    Write logs to file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  SPACE           Start / pause")
	fmt.Fprintln(os.Stderr, "  W / S           Player 1 up / down")
	fmt.Fprintln(os.Stderr, "  Up / Down       Player 2 up / down")
	fmt.Fprintln(os.Stderr, "  Q / Esc         Quit")
}
