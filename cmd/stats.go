package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stephen2m/webfaction-stats/webfaction"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show disk and bandwidth usage for the account",
	Long:  `Fetch disk and bandwidth usage statistics from WebFaction and print a summary.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	var (
		disk      *webfaction.DiskUsage
		bandwidth *webfaction.BandwidthUsage
	)

	// The two usage calls are independent, fetch them in parallel
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		disk, err = client.ListDiskUsage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bandwidth, err = client.ListBandwidthUsage(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printDiskUsage(disk)
	fmt.Println()
	printBandwidthUsage(bandwidth)

	return nil
}

func printDiskUsage(usage *webfaction.DiskUsage) {
	fmt.Println("Disk usage:")
	fmt.Println(strings.Repeat("-", 80))

	printDiskSection("Home directories", usage.HomeDirectories)
	printDiskSection("Mailboxes", usage.Mailboxes)
	printDiskSection("MySQL databases", usage.MySQLDatabases)
	printDiskSection("PostgreSQL databases", usage.PostgreSQLDatabases)

	if usage.Total != "" {
		fmt.Printf("\nTotal: %s", usage.Total)
		if usage.Quota != "" {
			fmt.Printf(" of %s", usage.Quota)
		}
		if usage.Percentage != "" {
			fmt.Printf(" (%s%%)", usage.Percentage)
		}
		fmt.Println()
	}
}

func printDiskSection(title string, items []webfaction.DiskUsageItem) {
	if len(items) == 0 {
		return
	}

	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  %-40s %s\n", item.Name, item.Size)
	}
}

func printBandwidthUsage(usage *webfaction.BandwidthUsage) {
	fmt.Println("Bandwidth usage:")
	fmt.Println(strings.Repeat("-", 80))

	printBandwidthSection("Monthly", usage.Monthly)
	printBandwidthSection("Daily", usage.Daily)
}

func printBandwidthSection(title string, periods map[string]map[string]float64) {
	if len(periods) == 0 {
		return
	}

	fmt.Printf("\n%s:\n", title)

	keys := make([]string, 0, len(periods))
	for period := range periods {
		keys = append(keys, period)
	}
	sort.Strings(keys)

	for _, period := range keys {
		var total float64
		for _, bytes := range periods[period] {
			total += bytes
		}
		fmt.Printf("  %-12s %s\n", period, formatBytes(total))
	}
}

func formatBytes(n float64) string {
	const unit = 1024.0
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	i := 0
	for n >= unit && i < len(units)-1 {
		n /= unit
		i++
	}

	return fmt.Sprintf("%.1f %s", n, units[i])
}
