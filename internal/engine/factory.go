package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// EnvBackend overrides the configured backend name when set.
const EnvBackend = "VOICEBRIDGE_ENGINE"

// New returns the engine backend selected by name. An empty name picks
// the default heuristic backend.
func New(name string, logger *zap.Logger, opts HeuristicOptions) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "heuristic":
		return NewHeuristicEngine(logger, opts), nil
	default:
		return nil, fmt.Errorf("unknown engine backend %q (known backends: heuristic)", name)
	}
}
