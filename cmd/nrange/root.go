package main

import (
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in at link time; otherwise build info is consulted.
var Version string

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state from leaking between invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nrange",
		Short:         "Enumerate and query N-dimensional integer regions.",
		Long:          "Build a region from one range expression per axis (0..3, 0..=3, 2.., ..5) and walk or query it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "nrange", version())
				return nil
			}

			return cmd.Help()
		},
	}
	root.Flags().Bool("version", false, "report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().StringP("file", "f", "", "read axes from a YAML region file")
	root.PersistentFlags().IntP("repeat", "r", 0, "replicate a single axis this many times")

	root.AddCommand(newWalkCmd(), newLenCmd(), newContainsCmd(), newIndexCmd(), newAtCmd())

	return root
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}

	return "(unknown version)"
}
