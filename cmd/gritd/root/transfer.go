package root

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"gritd/internal/structures"
	"os"
)

func newExportCmd(flags *structures.CliFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the export document to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := svc.ExportSnapshot()
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(append(doc, '\n'))
				return err
			}
			if err := os.WriteFile(output, doc, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d logs to %s\n", len(svc.Logs()), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newImportCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an export document",
		Long: `Replace all logs, reviews and rewards with the contents of an export document.

The current data is archived first and can be restored through the API.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ImportSnapshot(raw); err != nil {
				return err
			}
			if err := svc.Persist(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d logs, %d reviews, %d rewards\n",
				len(svc.Logs()), len(svc.Reviews()), len(svc.Rewards()))
			return nil
		},
	}
}

func newResetCmd(flags *structures.CliFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all logs, reviews and rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all data, pass --yes to confirm")
			}

			svc, cleanup, err := openService(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ResetAll()
			if err := svc.Persist(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
