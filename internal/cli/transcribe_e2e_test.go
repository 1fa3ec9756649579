package cli

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func speechLikeSamples(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(0.25 * 32767 * math.Sin(2*math.Pi*440*float64(i)/16000.0))
	}
	return samples
}

func TestTranscribeAudioEndToEnd(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "voice.wav", speechLikeSamples(32000), 16000)
	modelPath := writeFakeModel(t, "ggml-tiny.bin")

	app := &appState{
		model:      modelPath,
		modelDir:   t.TempDir(),
		backend:    "heuristic",
		noProgress: true,
	}

	text, err := app.transcribeAudio(context.Background(), audioPath)
	require.NoError(t, err)
	require.Contains(t, text, "ggml-tiny.bin")
	require.Contains(t, text, "2s")
}

func TestTranscribeAudioSilentInputReturnsFixedMessage(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "silent.wav", make([]int16, 32000), 16000)
	modelPath := writeFakeModel(t, "ggml-tiny.bin")

	app := &appState{
		model:      modelPath,
		modelDir:   t.TempDir(),
		backend:    "heuristic",
		noProgress: true,
	}

	text, err := app.transcribeAudio(context.Background(), audioPath)
	require.NoError(t, err)
	require.Contains(t, text, "No speech detected")
}

func TestTranscribeAudioShortInputReturnsFixedMessage(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "short.wav", speechLikeSamples(8000), 16000)
	modelPath := writeFakeModel(t, "ggml-tiny.bin")

	app := &appState{
		model:      modelPath,
		modelDir:   t.TempDir(),
		backend:    "heuristic",
		noProgress: true,
	}

	text, err := app.transcribeAudio(context.Background(), audioPath)
	require.NoError(t, err)
	require.Contains(t, text, "too short")
}

func TestTranscribeAudioRejectsWrongSampleRate(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "hifi.wav", speechLikeSamples(44100), 44100)
	modelPath := writeFakeModel(t, "ggml-tiny.bin")

	app := &appState{
		model:      modelPath,
		modelDir:   t.TempDir(),
		backend:    "heuristic",
		noProgress: true,
	}

	_, err := app.transcribeAudio(context.Background(), audioPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "resampling is not supported")
}

func TestTranscribeAudioMissingAudioFile(t *testing.T) {
	t.Parallel()

	app := &appState{
		model:      writeFakeModel(t, "ggml-tiny.bin"),
		modelDir:   t.TempDir(),
		backend:    "heuristic",
		noProgress: true,
	}

	_, err := app.transcribeAudio(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
}

func TestTranscribeAudioMissingModelWithoutAutoDownload(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "voice.wav", speechLikeSamples(32000), 16000)

	app := &appState{
		model:        "tiny",
		modelDir:     t.TempDir(),
		backend:      "heuristic",
		noProgress:   true,
		autoDownload: false,
	}

	_, err := app.transcribeAudio(context.Background(), audioPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "voicebridge setup")
}

func TestTranscribeAudioUnknownBackend(t *testing.T) {
	t.Parallel()

	audioPath := writeWAV(t, "voice.wav", speechLikeSamples(32000), 16000)

	app := &appState{
		model:      writeFakeModel(t, "ggml-tiny.bin"),
		modelDir:   t.TempDir(),
		backend:    "whispercpp",
		noProgress: true,
	}

	_, err := app.transcribeAudio(context.Background(), audioPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown engine backend")
}
