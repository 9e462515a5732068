package audit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/lab-inventory/cmd/cli/output"
	"github.com/crucial707/lab-inventory/internal/service"
)

// Init registers the history command on the root command.
func Init(rootCmd *cobra.Command, inv *service.Inventory) {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the audit log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := inv.History(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity yet.")
				return nil
			}
			output.AuditTable(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = all)")

	rootCmd.AddCommand(cmd)
}
