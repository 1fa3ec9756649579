package engine

import (
	"context"
	"errors"
)

var (
	// ErrAudioTooShort signals a buffer below the minimum audio duration.
	ErrAudioTooShort = errors.New("audio is shorter than the minimum duration")
	// ErrNoSpeechDetected signals a buffer whose energy is below the speech threshold.
	ErrNoSpeechDetected = errors.New("no speech detected in audio")
	// ErrModelNotLoaded signals a transcription attempt against a closed or foreign handle.
	ErrModelNotLoaded = errors.New("model handle is not loaded")
)

// Handle identifies one loaded model instance. A handle is only valid
// with the engine that produced it and becomes unusable after Close.
type Handle interface {
	ModelPath() string
	Close() error
}

// Engine is the capability a transcription session delegates to: load a
// model artifact, run inference over mono 16 kHz float32 PCM.
type Engine interface {
	LoadModel(ctx context.Context, modelPath string) (Handle, error)
	Transcribe(ctx context.Context, h Handle, samples []float32) (string, error)
}
