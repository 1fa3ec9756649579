package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fzahn/voicebridge/internal/audio"
	"github.com/fzahn/voicebridge/internal/engine"
	"go.uber.org/zap"
)

// Status classifies the outcome of a Transcribe call. It is meaningful
// only when Transcribe returned a nil error.
type Status int

const (
	StatusOK Status = iota
	StatusNotReady
	StatusEmptyInput
	StatusTooShort
	StatusNoSpeech
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotReady:
		return "not_ready"
	case StatusEmptyInput:
		return "empty_input"
	case StatusTooShort:
		return "too_short"
	case StatusNoSpeech:
		return "no_speech"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a Transcribe call. Text is set only
// for StatusOK; Duration reflects the input buffer length.
type Result struct {
	Status   Status
	Text     string
	Duration time.Duration
}

// Session owns at most one loaded model at a time and guards the
// initialize → transcribe → release lifecycle. All methods are safe for
// concurrent use; a transcription in flight blocks model replacement.
type Session struct {
	mu     sync.Mutex
	engine engine.Engine
	logger *zap.Logger

	handle    engine.Handle
	modelPath string
}

func New(eng engine.Engine, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{engine: eng, logger: logger}
}

// Initialize validates and loads the model at modelPath. A model that is
// already loaded is released before the new one takes its place. On
// failure the session always ends up unloaded, never partially loaded.
func (s *Session) Initialize(ctx context.Context, modelPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, err := s.engine.LoadModel(ctx, modelPath)
	if err != nil {
		s.unloadLocked()
		s.logger.Error("model initialization failed", zap.String("path", modelPath), zap.Error(err))
		return err
	}

	s.unloadLocked()
	s.handle = handle
	s.modelPath = handle.ModelPath()
	s.logger.Info("model initialized", zap.String("path", s.modelPath))
	return nil
}

// Transcribe runs the loaded engine over the buffer and returns a tagged
// result. Degraded outcomes (session not initialized, empty input, audio
// too short or too quiet) are statuses, not errors; only unexpected
// engine failures surface as errors.
func (s *Session) Transcribe(ctx context.Context, samples []float32) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		s.logger.Warn("transcribe called before initialize")
		return Result{Status: StatusNotReady}, nil
	}

	if len(samples) == 0 {
		s.logger.Warn("transcribe called with empty buffer")
		return Result{Status: StatusEmptyInput}, nil
	}

	duration := audio.Duration(len(samples))
	s.logger.Info("transcribing",
		zap.Int("samples", len(samples)),
		zap.Duration("audio", duration),
	)

	text, err := s.engine.Transcribe(ctx, s.handle, samples)
	switch {
	case errors.Is(err, engine.ErrAudioTooShort):
		s.logger.Info("audio below minimum duration", zap.Duration("audio", duration))
		return Result{Status: StatusTooShort, Duration: duration}, nil
	case errors.Is(err, engine.ErrNoSpeechDetected):
		s.logger.Info("audio below speech energy threshold", zap.Duration("audio", duration))
		return Result{Status: StatusNoSpeech, Duration: duration}, nil
	case err != nil:
		s.logger.Error("engine transcription failed", zap.Error(err))
		return Result{}, err
	}

	s.logger.Info("transcription finished", zap.Int("chars", len(text)))
	return Result{Status: StatusOK, Text: text, Duration: duration}, nil
}

// Release unloads the model if one is loaded. It is idempotent and never
// fails; releasing an unloaded session is a no-op.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		s.logger.Debug("release called on unloaded session")
		return
	}

	path := s.modelPath
	s.unloadLocked()
	s.logger.Info("session released", zap.String("path", path))
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil
}

// ModelPath returns the path of the loaded model, or "" when unloaded.
func (s *Session) ModelPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelPath
}

func (s *Session) unloadLocked() {
	if s.handle == nil {
		return
	}
	if err := s.handle.Close(); err != nil {
		s.logger.Warn("failed to close engine handle", zap.String("path", s.modelPath), zap.Error(err))
	}
	s.handle = nil
	s.modelPath = ""
}
