package tone

import (
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/cymatics/internal/config"
)

// WriteWAV encodes loops repetitions of samples as 16-bit mono WAV.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate, loops int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", config.ErrSampleRate, sampleRate)
	}
	if len(samples) == 0 || loops < 1 {
		return fmt.Errorf("nothing to export: %d samples x %d loops", len(samples), loops)
	}
	format := beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 1, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(monoStreamer(samples))
	return wav.Encode(w, beep.Loop(loops, buf.Streamer(0, buf.Len())), format)
}

// ExportFile builds the tone for params and writes it to path.
func ExportFile(path string, params config.Params, loops int) error {
	samples, err := Build(params.Frequency, params.SampleRate, params.Duration)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, samples, params.SampleRate, loops); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
