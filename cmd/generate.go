package cmd

import (
	"fmt"

	"libconfgen/pkg/cmakeconfig"
	"libconfgen/pkg/logging"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [directory]",
	Short: "Generate cmake/LibraryConfig.cmake for a directory",
	Long: `Generate scans the directory for headers and libraries and writes
<directory>/cmake/LibraryConfig.cmake. The cmake directory must not exist yet.
Without an argument the directory path is read from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)
}

// runGenerate resolves the root directory from args or the prompt, generates the
// configuration and prints the path of the generated file.
func runGenerate(cmd *cobra.Command, args []string) error {
	var root string
	if len(args) == 1 {
		root = args[0]
	} else {
		var err error
		root, err = promptDirectory(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read directory path: %w", err)
		}
	}

	res, err := cmakeconfig.NewGenerator(logging.Logger).Generate(root)
	if err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "CMake configuration file generated at: %s\n", res.Path)
	return nil
}
