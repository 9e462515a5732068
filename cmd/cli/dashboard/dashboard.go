package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/lab-inventory/cmd/cli/output"
	"github.com/crucial707/lab-inventory/internal/service"
)

// recentEntries is how many audit rows the dashboard shows.
const recentEntries = 5

// Init registers the dashboard command on the root command.
func Init(rootCmd *cobra.Command, inv *service.Inventory) {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Lab status summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := time.Now().Format("2006-01-02")

			stats, err := inv.Stats(today)
			if err != nil {
				return err
			}

			fmt.Printf("Total Assets: %d\n", stats.Total)
			fmt.Printf("Checked Out:  %d\n", stats.CheckedOut)
			if stats.Overdue > 0 {
				fmt.Printf("Overdue:      %d  (action required)\n", stats.Overdue)
			} else {
				fmt.Println("Overdue:      0  (all good)")
			}

			if len(stats.ByCategory) > 0 {
				fmt.Println("\nCategory Distribution:")
				categories := make([]string, 0, len(stats.ByCategory))
				for c := range stats.ByCategory {
					categories = append(categories, c)
				}
				sort.Strings(categories)
				for _, c := range categories {
					fmt.Printf("  %-20s %d\n", c, stats.ByCategory[c])
				}
			}

			if stats.Overdue > 0 {
				overdue, err := inv.Overdue(today)
				if err != nil {
					return err
				}
				fmt.Println("\nOverdue Assets:")
				output.AssetTable(overdue)
			}

			entries, err := inv.History(recentEntries)
			if err != nil {
				return err
			}
			if len(entries) > 0 {
				fmt.Println("\nLatest Activity:")
				output.AuditTable(entries)
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
