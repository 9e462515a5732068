package admin

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/lab-inventory/cmd/cli/session"
	"github.com/crucial707/lab-inventory/internal/config"
	"github.com/crucial707/lab-inventory/internal/service"
)

// Init registers admin commands on the root command.
func Init(rootCmd *cobra.Command, inv *service.Inventory, cfg config.Config) {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the inventory store to a backup file (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := session.Caller([]byte(cfg.SessionSecret))
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("inventory_backup_%s.json", time.Now().Format("20060102_150405"))
			}

			if err := inv.Backup(caller, out); err != nil {
				return err
			}

			fmt.Println("Inventory backed up to", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "backup file path (default inventory_backup_<timestamp>.json)")

	rootCmd.AddCommand(cmd)
}
