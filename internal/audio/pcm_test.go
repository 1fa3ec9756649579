package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeanAbsAmplitudeEmptyBuffer(t *testing.T) {
	t.Parallel()

	require.Zero(t, MeanAbsAmplitude(nil))
	require.Zero(t, MeanAbsAmplitude([]float32{}))
}

func TestMeanAbsAmplitudeAllZero(t *testing.T) {
	t.Parallel()

	require.Zero(t, MeanAbsAmplitude(make([]float32, 32000)))
}

func TestMeanAbsAmplitudeConstantSignal(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = 0.5
	}
	require.InDelta(t, 0.5, MeanAbsAmplitude(samples), 1e-9)
}

func TestMeanAbsAmplitudeUsesMagnitude(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.25, MeanAbsAmplitude([]float32{0.25, -0.25, 0.25, -0.25}), 1e-9)
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Seconds(0))
	require.Equal(t, 0, Seconds(8000))
	require.Equal(t, 1, Seconds(16000))
	require.Equal(t, 2, Seconds(32000))
	require.Equal(t, 2, Seconds(47999))
	require.Equal(t, 0, Seconds(-1))
}

func TestDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Duration(0), Duration(0))
	require.Equal(t, 500*time.Millisecond, Duration(8000))
	require.Equal(t, 2*time.Second, Duration(32000))
}
