package root

import (
	"fmt"
	"github.com/spf13/cobra"
	"gritd/internal/di"
	"gritd/internal/services"
	"gritd/internal/structures"
	"os"
)

const Version = "1.0.0"

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:           "gritd",
		Short:         "Grit tracker daemon",
		Long:          "gritd records endured tasks, weekly reflections and score rewards, and serves them over a local HTTP API.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the yaml config file")
	cmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "enable debug mode")

	cmd.AddCommand(
		newServeCmd(flags),
		newExportCmd(flags),
		newImportCmd(flags),
		newResetCmd(flags),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

func openService(flags *structures.CliFlags) (services.GritServiceInterface, func(), error) {
	svc, cleanup, err := di.InitService(flags)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return svc, cleanup, nil
}
