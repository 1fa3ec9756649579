package cli

import (
	"fmt"

	"github.com/fzahn/voicebridge/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a model artifact without loading it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			modelDir, err := app.modelStorageDir()
			if err != nil {
				return err
			}

			resolved, err := model.Resolve(app.model, modelDir)
			if err != nil {
				return err
			}

			validate := model.Validate
			if app.strict {
				validate = model.ValidateStrict
			}

			artifact, err := validate(resolved.Path)
			if err != nil {
				return err
			}

			app.log().Info("model artifact valid",
				zap.String("path", artifact.Path),
				zap.Int64("size_bytes", artifact.Size),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Model artifact OK: %s (%d bytes)\n", artifact.Path, artifact.Size)
			return nil
		},
	}

	bindLoggingFlags(cmd, app)
	bindModelFlags(cmd, app)
	return cmd
}
