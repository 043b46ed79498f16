package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-tween/envelope"
)

const (
	// Frames per processing chunk
	bufferSize = 16384

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	bitsPerByte     = 8

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	if err := decoder.FwdToPCM(); err != nil {
		_ = inputFile.Close()
		return nil, fmt.Errorf("failed to find audio data: %w", err)
	}

	// The fade-out needs the length up front
	var totalFrames int64
	if bytesPerFrame := format.NumChannels * bitDepth / bitsPerByte; bytesPerFrame > 0 {
		totalFrames = decoder.PCMLen() / int64(bytesPerFrame)
	}

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        format.SampleRate,
		channels:    format.NumChannels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and the go-audio encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// createWAVOutput creates the output file and encoder.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM)
	return &wavOutputWriter{
		file:    outputFile,
		encoder: encoder,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	w.buf.Data = samples
	return w.encoder.Write(w.buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto(data []int, channelBufs [][]float64, numChannels, frames int, invMaxVal float64) {
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range frames {
			buf[i] = float64(data[i]) * invMaxVal
		}
		return
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
}

// interleaveInto converts the first frames of per-channel float buffers into
// dst, clipping to [-1, 1]. scratch must hold frames*len(channels) samples.
// Returns the number of elements written.
func interleaveInto(channels [][]float64, frames int, scratch []float64, dst []int, maxVal float64) int {
	numChannels := len(channels)
	total := frames * numChannels

	var src []float64
	switch numChannels {
	case monoChannels:
		src = channels[0][:frames]
	case stereoChannels:
		src = scratch[:total]
		envelope.Interleave(src, channels[0][:frames], channels[1][:frames])
	default:
		src = scratch[:total]
		for i := range frames {
			for ch := range numChannels {
				src[i*numChannels+ch] = channels[ch][i]
			}
		}
	}

	for i, s := range src {
		dst[i] = int(min(max(s, -1), 1) * maxVal)
	}
	return total
}
