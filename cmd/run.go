package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run COMMAND...",
	Short: "Run a shell command on the account server",
	Long: `Run a command as the account user on the target server and print its
output. Quote or use -- to stop flag parsing, e.g.:

  webfaction-stats run -- ls -la`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	output, err := client.System(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Print(output)
	if output != "" && !strings.HasSuffix(output, "\n") {
		fmt.Println()
	}

	return nil
}
