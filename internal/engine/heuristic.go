package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fzahn/voicebridge/internal/audio"
	"github.com/fzahn/voicebridge/internal/model"
	"go.uber.org/zap"
)

const (
	// minSamples is one second of audio at the fixed input rate.
	minSamples = audio.SampleRate
	// energyThreshold is the mean absolute amplitude below which a
	// buffer is treated as containing no speech.
	energyThreshold = 0.01
)

// HeuristicEngine classifies audio by duration and energy instead of
// running a real acoustic model. It keeps the load/transcribe call shape
// a production backend would implement.
type HeuristicEngine struct {
	logger *zap.Logger
	strict bool
}

type HeuristicOptions struct {
	// Strict requires the ggml magic bytes on loaded artifacts.
	Strict bool
}

func NewHeuristicEngine(logger *zap.Logger, opts HeuristicOptions) *HeuristicEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeuristicEngine{logger: logger, strict: opts.Strict}
}

type heuristicHandle struct {
	path   string
	closed bool
}

func (h *heuristicHandle) ModelPath() string {
	return h.path
}

func (h *heuristicHandle) Close() error {
	h.closed = true
	return nil
}

func (e *HeuristicEngine) LoadModel(ctx context.Context, modelPath string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	validate := model.Validate
	if e.strict {
		validate = model.ValidateStrict
	}

	artifact, err := validate(modelPath)
	if err != nil {
		return nil, err
	}

	e.logger.Info("model artifact accepted",
		zap.String("path", artifact.Path),
		zap.Int64("size_bytes", artifact.Size),
	)
	return &heuristicHandle{path: artifact.Path}, nil
}

func (e *HeuristicEngine) Transcribe(ctx context.Context, h Handle, samples []float32) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hh, ok := h.(*heuristicHandle)
	if !ok || hh.closed {
		return "", ErrModelNotLoaded
	}

	if len(samples) < minSamples {
		return "", fmt.Errorf("%w: got %d samples, need %d", ErrAudioTooShort, len(samples), minSamples)
	}

	energy := audio.MeanAbsAmplitude(samples)
	if energy < energyThreshold {
		return "", fmt.Errorf("%w: mean amplitude %.4f below %.2f", ErrNoSpeechDetected, energy, energyThreshold)
	}

	seconds := audio.Seconds(len(samples))
	e.logger.Debug("heuristic classification passed",
		zap.Float64("mean_amplitude", energy),
		zap.Int("seconds", seconds),
	)

	return fmt.Sprintf("transcription request completed (model: %s, audio length: %ds)", filepath.Base(hh.path), seconds), nil
}
