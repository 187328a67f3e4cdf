// Package wavefile reads and writes 16-bit PCM WAV files as planar
// float32 sample data ready for the libspark kernels. It uses
// github.com/go-audio/wav for the container handling and the convert
// kernels for sample-format and layout changes.
//
// This is setup/teardown periphery: it allocates freely and is not part
// of any real-time path.
package wavefile

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Colahall/libspark/pkg/block"
	"github.com/Colahall/libspark/pkg/dsp/convert"
)

var (
	// ErrNotPCM is returned for WAV files that are not linear PCM.
	ErrNotPCM = errors.New("wavefile: not a PCM WAV file")
	// ErrUnsupportedBitDepth is returned for PCM depths other than 16.
	ErrUnsupportedBitDepth = errors.New("wavefile: only 16-bit PCM is supported")
)

// PCM holds decoded audio as channel-major contiguous planes of float32
// samples in [-1, 1): channel k occupies Data[k*Frames : (k+1)*Frames].
type PCM struct {
	Data       []float32
	Channels   int
	Frames     int
	SampleRate int
}

// Buffer returns a planar buffer descriptor over the sample data.
func (p *PCM) Buffer() block.Buffer[float32] {
	return block.NewBuffer(p.Data, uint32(p.Channels), uint32(p.Frames), block.LayoutPlanar)
}

// Read decodes a 16-bit PCM WAV stream into planar float32 data.
func Read(r io.ReadSeeker) (*PCM, error) {
	d := wav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavefile: decode: %w", err)
	}
	if d.WavAudioFormat != 1 {
		return nil, ErrNotPCM
	}
	if d.BitDepth != 16 {
		return nil, ErrUnsupportedBitDepth
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	interleaved := make([]int16, channels*frames)
	for i := range interleaved {
		interleaved[i] = int16(buf.Data[i])
	}

	return FromInterleavedI16(interleaved, channels, frames, buf.Format.SampleRate)
}

// FromInterleavedI16 converts frame-major int16 samples (the layout every
// decoder in this stack produces) into planar float32 data, running the
// samples through the convert kernels.
func FromInterleavedI16(samples []int16, channels, frames, sampleRate int) (*PCM, error) {
	floats := make([]float32, channels*frames)
	toFloat := block.New(
		block.NewBuffer(samples, uint32(channels), uint32(frames), block.LayoutInterleaved),
		block.NewBuffer(floats, uint32(channels), uint32(frames), block.LayoutInterleaved),
	)
	if err := convert.I16ToF32(toFloat); err != nil {
		return nil, fmt.Errorf("wavefile: %w", err)
	}

	planes := make([]float32, channels*frames)
	toPlanar := block.New(
		block.NewBuffer(floats, uint32(channels), uint32(frames), block.LayoutInterleaved),
		block.NewBuffer(planes, uint32(channels), uint32(frames), block.LayoutPlanar),
	)
	if err := convert.Deinterleave(toPlanar); err != nil {
		return nil, fmt.Errorf("wavefile: %w", err)
	}

	return &PCM{Data: planes, Channels: channels, Frames: frames, SampleRate: sampleRate}, nil
}

// Write encodes planar float32 data as a 16-bit PCM WAV stream.
func Write(w io.WriteSeeker, p *PCM) error {
	interleaved := make([]float32, p.Channels*p.Frames)
	toInterleaved := block.New(
		p.Buffer(),
		block.NewBuffer(interleaved, uint32(p.Channels), uint32(p.Frames), block.LayoutInterleaved),
	)
	if err := convert.Interleave(toInterleaved); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}

	ints := make([]int16, p.Channels*p.Frames)
	toInt := block.New(
		block.NewBuffer(interleaved, uint32(p.Channels), uint32(p.Frames), block.LayoutInterleaved),
		block.NewBuffer(ints, uint32(p.Channels), uint32(p.Frames), block.LayoutInterleaved),
	)
	if err := convert.F32ToI16(toInt); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}

	data := make([]int, len(ints))
	for i, s := range ints {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, p.SampleRate, 16, p.Channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavefile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavefile: encode: %w", err)
	}
	return nil
}
