package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersCoreSubcommands(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["transcribe"])
	require.True(t, names["check"])
	require.True(t, names["setup"])
	require.True(t, names["version"])
}

func TestRootHelpParsesSuccessfully(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)
	require.Contains(t, out.String(), "transcribe")
	require.Contains(t, out.String(), "check")
	require.Contains(t, out.String(), "setup")
}

func TestSubcommandHelpParsesSuccessfully(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "transcribe", args: []string{"transcribe", "--help"}, contains: "Transcribe a WAV file"},
		{name: "check", args: []string{"check", "--help"}, contains: "Validate a model artifact"},
		{name: "setup", args: []string{"setup", "--help"}, contains: "Download and verify speech model assets"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := NewRootCmd()
			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.NoError(t, err)
			require.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestTranscribeFlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	sub, _, err := cmd.Find([]string{"transcribe"})
	require.NoError(t, err)

	require.NotNil(t, sub.Flags().Lookup("model"))
	require.NotNil(t, sub.Flags().Lookup("model-dir"))
	require.NotNil(t, sub.Flags().Lookup("engine"))
	require.Equal(t, "tiny", sub.Flags().Lookup("model").DefValue)
	require.Equal(t, "heuristic", sub.Flags().Lookup("engine").DefValue)
	require.Equal(t, "true", sub.Flags().Lookup("auto-download").DefValue)
	require.Equal(t, "false", sub.Flags().Lookup("strict").DefValue)
}

func TestBackendNameEnvOverride(t *testing.T) {
	t.Setenv("VOICEBRIDGE_ENGINE", "heuristic")

	app := &appState{backend: "something-else"}
	require.Equal(t, "heuristic", app.backendName())
}

func TestBackendNameFallsBackToFlag(t *testing.T) {
	t.Setenv("VOICEBRIDGE_ENGINE", "")

	app := &appState{backend: "heuristic"}
	require.Equal(t, "heuristic", app.backendName())
}
