package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stephen2m/webfaction-stats/filter"
	"github.com/stephen2m/webfaction-stats/webfaction"
)

// appsCmd represents the apps command
var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List applications installed on the account",
	RunE:  runApps,
}

func init() {
	appsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", `filter expression, e.g. 'Type == "static"'`)
	rootCmd.AddCommand(appsCmd)
}

func runApps(cmd *cobra.Command, args []string) error {
	apps, err := client.ListApps(context.Background())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		pred, err := filter.Compile[webfaction.App](filterExpr)
		if err != nil {
			return err
		}
		apps = filter.Apply(apps, pred)
	}

	if len(apps) == 0 {
		fmt.Println("No apps found.")
		return nil
	}

	fmt.Printf("Found %d apps:\n", len(apps))
	fmt.Println(strings.Repeat("-", 80))

	for _, app := range apps {
		fmt.Printf("• %s (%s)", app.Name, app.Type)
		if app.Autostart {
			fmt.Printf(" [autostart]")
		}
		if app.PortOpen {
			fmt.Printf(" [port open]")
		}
		fmt.Println()
		if app.ExtraInfo != "" {
			fmt.Printf("  Extra: %s\n", app.ExtraInfo)
		}
	}

	return nil
}
