package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sorting/internal/flags"
)

// newRootCommand builds the sortbench command tree with its flags registered.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sortbench",
		Short:             "Benchmarks and verifies in-place comparison sorts",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: preRun,
	}

	flags.SetDefaults()
	flags.RegisterSystemFlags(rootCmd)

	rootCmd.AddCommand(newRunCommand(), newSortCommand())

	return rootCmd
}

func preRun(cmd *cobra.Command, _ []string) error {
	if err := flags.SetupLogging(cmd.Flags()); err != nil {
		return err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	if noColor {
		color.NoColor = true
	}

	return nil
}
