package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cymatics/internal/app"
	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/cymatics"
	"github.com/iburimskiy/cymatics/internal/game"
	"github.com/iburimskiy/cymatics/internal/log"
	"github.com/iburimskiy/cymatics/internal/tone"
	"github.com/iburimskiy/cymatics/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "cymatics:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := config.Load(args, os.Stderr)
	if err != nil {
		return err
	}

	// The terminal UI owns stdout/stderr, so logs only go to a file there.
	var logOut io.Writer = os.Stderr
	if opts.TUI {
		logOut = io.Discard
	}
	if err := log.Init(logOut, opts.LogFile, opts.LogLevel); err != nil {
		return err
	}
	defer log.Close()

	if opts.Export != "" {
		if err := tone.ExportFile(opts.Export, opts.Params, opts.Loops); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Infof("exported %d loops of %d Hz to %s", opts.Loops, opts.Params.Frequency, opts.Export)
		return nil
	}

	field := cymatics.NewField(config.ParticleCount, rand.New(rand.NewSource(opts.Seed)))
	spk := tone.NewSpeaker(opts.Params.SampleRate, config.OutputGain)
	ctrl := app.New(opts.Params, field, spk)
	log.Infof("starting at %d Hz, %s", opts.Params.Frequency, ctrl.ModeLabel())

	if opts.TUI {
		_, err := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen()).Run()
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Cymatics - Menu: settings, Space: Play/Pause, Arrows: Frequency, Q: Quit")

	g := game.NewGame(ctrl, spk, opts.Loops)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
