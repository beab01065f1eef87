package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Options are the command-line settings for one run.
type Options struct {
	Params   Params
	Seed     int64
	TUI      bool
	Export   string
	Loops    int
	LogLevel string
	LogFile  string
}

// Load parses args (without the program name). Environment variables
// CYMATICS_FREQUENCY, CYMATICS_SAMPLERATE, CYMATICS_DURATION, CYMATICS_LOGLEVEL
// and CYMATICS_LOGFILE provide defaults that flags override.
func Load(args []string, stderr io.Writer) (Options, error) {
	def := DefaultParams()
	opts := Options{Params: def}

	freq, err := envInt("CYMATICS_FREQUENCY", def.Frequency)
	if err != nil {
		return opts, err
	}
	sr, err := envInt("CYMATICS_SAMPLERATE", def.SampleRate)
	if err != nil {
		return opts, err
	}
	dur, err := envFloat("CYMATICS_DURATION", def.Duration)
	if err != nil {
		return opts, err
	}

	fs := flag.NewFlagSet("cymatics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.Params.Frequency, "frequency", freq, "Starting tone frequency in Hz")
	fs.IntVar(&opts.Params.SampleRate, "samplerate", sr, "Audio sample rate in Hz")
	fs.Float64Var(&opts.Params.Duration, "duration", dur, "Length of the looped tone buffer in seconds (0.01-1.0)")
	fs.BoolVar(&opts.Params.Playing, "play", true, "Start in the playing state")
	fs.Int64Var(&opts.Seed, "seed", 1, "Seed for the initial particle positions")
	fs.BoolVar(&opts.TUI, "tui", false, "Run in the terminal instead of a window")
	fs.StringVar(&opts.Export, "export", "", "Write the tone to a WAV file and exit")
	fs.IntVar(&opts.Loops, "loops", 10, "Number of buffer loops written by -export")
	fs.StringVar(&opts.LogLevel, "loglevel", getEnv("CYMATICS_LOGLEVEL", "info"), "Log level: debug, info, warn, error")
	fs.StringVar(&opts.LogFile, "logfile", getEnv("CYMATICS_LOGFILE", ""), "Write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if err := opts.Params.Validate(); err != nil {
		return opts, err
	}
	if opts.Loops < 1 {
		return opts, fmt.Errorf("loops must be at least 1: %d", opts.Loops)
	}
	opts.Params.Duration = ClampDuration(opts.Params.Duration)
	opts.Params.Frequency = ClampFrequency(opts.Params.Frequency)
	return opts, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
