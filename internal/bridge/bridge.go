// Package bridge exposes the flat boolean/string call surface a managed
// caller binds against: initialize returns a success flag, transcribe
// always returns text, release always succeeds. Diagnostic detail goes
// to the log only.
package bridge

import (
	"context"

	"github.com/fzahn/voicebridge/internal/session"
	"go.uber.org/zap"
)

const (
	tooShortMessage = "Audio too short, please speak a little longer."
	noSpeechMessage = "No speech detected, please record again."
)

type Bridge struct {
	session *session.Session
	logger  *zap.Logger
}

func New(sess *session.Session, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{session: sess, logger: logger}
}

// InitializeModel loads the model at path and reports success. Failure
// detail is logged, not returned.
func (b *Bridge) InitializeModel(path string) bool {
	return b.session.Initialize(context.Background(), path) == nil
}

// Transcribe returns text for every outcome: the transcript on success,
// a fixed message for degraded classifications, and "" when the session
// is not initialized, the buffer is empty, or the engine failed.
func (b *Bridge) Transcribe(samples []float32) string {
	result, err := b.session.Transcribe(context.Background(), samples)
	if err != nil {
		b.logger.Error("transcription failed", zap.Error(err))
		return ""
	}
	return Render(result)
}

func (b *Bridge) Release() {
	b.session.Release()
}

// Render maps a tagged session result onto the always-text contract.
func Render(result session.Result) string {
	switch result.Status {
	case session.StatusTooShort:
		return tooShortMessage
	case session.StatusNoSpeech:
		return noSpeechMessage
	case session.StatusOK:
		return result.Text
	default:
		return ""
	}
}
