package config

import (
	"flag"

	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultFPS        = 60
	DefaultHoldFrames = 8
	MaxFPS            = 240
	MaxHoldFrames     = 120
)

// Config holds the application configuration
type Config struct {
	FPS        int
	HoldFrames int
	Seed       int64
	Mute       bool
	LogFile    string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pingpong", flag.ContinueOnError)

	fps := fs.Int("fps", DefaultFPS, "frames per second (1-240)")
	hold := fs.Int("hold", DefaultHoldFrames, "frames a key stays held after its last press (1-120)")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	mute := fs.Bool("mute", false, "disable sound")
	logFile := fs.String("log", "", "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *fps < 1 || *fps > MaxFPS {
		return nil, errors.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	if *hold < 1 || *hold > MaxHoldFrames {
		return nil, errors.Errorf("hold must be between 1 and %d, got %d", MaxHoldFrames, *hold)
	}

	cfg := &Config{
		FPS:        *fps,
		HoldFrames: *hold,
		Seed:       *seed,
		Mute:       *mute,
		LogFile:    *logFile,
	}

	return cfg, nil
}
