package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fzahn/voicebridge/internal/audio"
	"github.com/fzahn/voicebridge/internal/bridge"
	"github.com/fzahn/voicebridge/internal/download"
	"github.com/fzahn/voicebridge/internal/engine"
	"github.com/fzahn/voicebridge/internal/model"
	"github.com/fzahn/voicebridge/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTranscribeCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a WAV file through a model session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcribeFn := app.transcribeFn
			if transcribeFn == nil {
				transcribeFn = app.transcribeAudio
			}

			text, err := transcribeFn(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)
	bindModelFlags(cmd, app)
	bindEngineFlags(cmd, app)
	return cmd
}

func (a *appState) transcribeAudio(ctx context.Context, audioPath string) (string, error) {
	audioPath = filepath.Clean(audioPath)

	samples, rate, err := audio.DecodeWAV(audioPath)
	if err != nil {
		return "", fmt.Errorf("decode audio %s: %w", audioPath, err)
	}
	if rate != audio.SampleRate {
		return "", fmt.Errorf("audio must be %d Hz, got %d Hz (resampling is not supported)", audio.SampleRate, rate)
	}

	resolved, err := a.ensureModelAvailable(ctx)
	if err != nil {
		return "", err
	}

	eng, err := engine.New(a.backendName(), a.log(), engine.HeuristicOptions{Strict: a.strict})
	if err != nil {
		return "", err
	}

	sess := session.New(eng, a.log())
	if err := sess.Initialize(ctx, resolved.Path); err != nil {
		return "", fmt.Errorf("initialize model %s: %w", resolved.Path, err)
	}
	defer sess.Release()

	a.log().Info("transcribing...",
		zap.String("audio", audioPath),
		zap.String("model", resolved.Path),
		zap.Int("samples", len(samples)),
	)
	stopSpinner := startSpinner(a.progressEnabled(), "Transcribing")
	started := time.Now()

	result, err := sess.Transcribe(ctx, samples)
	stopSpinner()
	if err != nil {
		a.log().Warn("transcription failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return "", err
	}
	a.log().Info("transcription finished",
		zap.Duration("elapsed", time.Since(started)),
		zap.String("status", result.Status.String()),
	)

	return bridge.Render(result), nil
}

func (a *appState) ensureModelAvailable(ctx context.Context) (model.ResolvedModel, error) {
	modelDir, err := a.modelStorageDir()
	if err != nil {
		return model.ResolvedModel{}, err
	}

	resolved, err := model.Resolve(a.model, modelDir)
	if err != nil {
		return model.ResolvedModel{}, err
	}

	if !resolved.NeedsDownload {
		return resolved, nil
	}

	if !a.autoDownload {
		return model.ResolvedModel{}, fmt.Errorf("model %q is missing at %s; run `voicebridge setup --model %s` or use --auto-download=true", resolved.Name, resolved.Path, resolved.Name)
	}

	a.log().Info("model not found, downloading", zap.String("model", resolved.Name), zap.String("destination", resolved.Path))
	if err := download.DownloadFile(ctx, download.Options{
		URL:            resolved.URL,
		Destination:    resolved.Path,
		ExpectedSHA256: resolved.SHA256,
		NoProgress:     a.noProgress,
		Logger:         a.log(),
	}); err != nil {
		return model.ResolvedModel{}, fmt.Errorf("download model %q: %w", resolved.Name, err)
	}

	resolved.NeedsDownload = false
	return resolved, nil
}
