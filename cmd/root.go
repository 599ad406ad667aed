package cmd

import (
	"libconfgen/pkg/logging"
	"libconfgen/pkg/version"

	"github.com/spf13/cobra"
)

var debug bool

// RootCmd is the base command. Run without a subcommand it behaves like generate.
var RootCmd = &cobra.Command{
	Use:   "libconfgen [directory]",
	Short: "libconfgen writes a CMake config for prebuilt headers and libraries",
	Long: `libconfgen scans a directory tree for header (.h) and library (.so, .a) files
and writes <directory>/cmake/LibraryConfig.cmake describing them.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		return logging.Setup(true, "libconfgen", version.Version)
	},
	RunE: runGenerate,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
