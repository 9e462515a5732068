package root

import (
	"github.com/spf13/cobra"
)

// RootCmd is the top-level lab-inventory command.
var RootCmd = &cobra.Command{
	Use:   "lab",
	Short: "Lab inventory tracker",
	Long:  "Track lab equipment: browse and search the catalog, check items in and out, and review the audit trail.",
}

// GetRoot returns the root command for subcommand registration.
func GetRoot() *cobra.Command {
	return RootCmd
}
