package model

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound   = errors.New("model artifact not found")
	ErrEmpty      = errors.New("model artifact is empty")
	ErrNotRegular = errors.New("model artifact is not a regular file")
	ErrBadMagic   = errors.New("model artifact has no ggml header")
)

// ggml files start with "ggml" encoded as a little-endian uint32.
const ggmlMagic = 0x67676d6c

// Artifact describes a model file that passed validation.
type Artifact struct {
	Path string
	Size int64
}

// Validate checks that path points at a readable, non-empty regular file.
// It performs no format inspection; use ValidateStrict for a header check.
func Validate(path string) (Artifact, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Artifact{}, fmt.Errorf("%w: empty path", ErrNotFound)
	}

	cleaned := filepath.Clean(trimmed)
	info, err := os.Stat(cleaned)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Artifact{}, fmt.Errorf("%w: %s", ErrNotFound, cleaned)
		}
		return Artifact{}, fmt.Errorf("stat model artifact: %w", err)
	}

	if info.IsDir() {
		return Artifact{}, fmt.Errorf("%w: %s is a directory", ErrNotRegular, cleaned)
	}

	if info.Size() == 0 {
		return Artifact{}, fmt.Errorf("%w: %s", ErrEmpty, cleaned)
	}

	return Artifact{Path: cleaned, Size: info.Size()}, nil
}

// ValidateStrict validates the artifact and additionally requires the
// ggml magic bytes at offset zero.
func ValidateStrict(path string) (Artifact, error) {
	artifact, err := Validate(path)
	if err != nil {
		return Artifact{}, err
	}

	f, err := os.Open(artifact.Path)
	if err != nil {
		return Artifact{}, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(f, header); err != nil {
		return Artifact{}, fmt.Errorf("%w: %s", ErrBadMagic, artifact.Path)
	}

	if binary.LittleEndian.Uint32(header) != ggmlMagic {
		return Artifact{}, fmt.Errorf("%w: %s", ErrBadMagic, artifact.Path)
	}

	return artifact, nil
}
