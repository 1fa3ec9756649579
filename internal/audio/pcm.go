package audio

import (
	"math"
	"time"
)

// SampleRate is the fixed input rate of the transcription pipeline.
// Buffers are mono PCM at this rate; no resampling is performed.
const SampleRate = 16000

// MeanAbsAmplitude returns the mean absolute amplitude of the buffer,
// or 0 for an empty buffer.
func MeanAbsAmplitude(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += math.Abs(float64(s))
	}
	return sum / float64(len(samples))
}

// Seconds returns the whole-second duration of a buffer at SampleRate.
func Seconds(sampleCount int) int {
	if sampleCount < 0 {
		return 0
	}
	return sampleCount / SampleRate
}

// Duration returns the exact duration of a buffer at SampleRate.
func Duration(sampleCount int) time.Duration {
	if sampleCount < 0 {
		return 0
	}
	return time.Duration(sampleCount) * time.Second / SampleRate
}
