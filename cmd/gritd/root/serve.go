package root

import (
	"github.com/spf13/cobra"
	"gritd/internal/di"
	"gritd/internal/structures"
)

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := di.InitApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			return app.Run()
		},
	}
}
