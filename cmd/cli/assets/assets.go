package assets

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/lab-inventory/cmd/cli/output"
	"github.com/crucial707/lab-inventory/cmd/cli/session"
	"github.com/crucial707/lab-inventory/internal/config"
	"github.com/crucial707/lab-inventory/internal/images"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/qr"
	"github.com/crucial707/lab-inventory/internal/service"
)

// ==========================
// Init Assets
// ==========================

func Init(rootCmd *cobra.Command, inv *service.Inventory, cfg config.Config) {
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage assets",
	}

	assetsCmd.AddCommand(
		listCmd(inv),
		getCmd(inv),
		searchCmd(inv),
		overdueCmd(inv),
		createCmd(inv, cfg),
		statusCmd(inv, cfg),
		deleteCmd(inv, cfg),
		qrCmd(inv),
	)

	rootCmd.AddCommand(assetsCmd)
}

// ==========================
// LIST
// ==========================

func listCmd(inv *service.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := inv.List()
			if err != nil {
				return err
			}
			output.AssetTable(assets)
			return nil
		},
	}
}

// ==========================
// GET
// ==========================

func getCmd(inv *service.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid asset id: %s", args[0])
			}
			a, err := inv.Get(id)
			if err != nil {
				return err
			}
			output.AssetTable([]models.Asset{a})
			if a.Image != "" {
				fmt.Println("Image:", a.Image)
			}
			return nil
		},
	}
}

// ==========================
// SEARCH
// ==========================

func searchCmd(inv *service.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search assets by name or ID",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			assets, err := inv.Search(term)
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				fmt.Println("No assets found.")
				return nil
			}
			output.AssetTable(assets)
			return nil
		},
	}
}

// ==========================
// OVERDUE
// ==========================

func overdueCmd(inv *service.Inventory) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List checked-out assets past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asOf == "" {
				asOf = time.Now().Format("2006-01-02")
			}
			assets, err := inv.Overdue(asOf)
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				fmt.Println("No overdue assets. All good.")
				return nil
			}
			fmt.Printf("Warning: %d asset(s) overdue as of %s\n", len(assets), asOf)
			output.AssetTable(assets)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date YYYY-MM-DD (default today)")

	return cmd
}

// ==========================
// CREATE
// ==========================

func createCmd(inv *service.Inventory, cfg config.Config) *cobra.Command {
	var name, category, location, status, image string
	var quantity int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new asset (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := session.Caller([]byte(cfg.SessionSecret))
			if err != nil {
				return err
			}

			// Attach the photo first; its stored path goes on the record.
			storedImage, err := images.Save(cfg.ImageDir, image)
			if err != nil {
				return fmt.Errorf("failed to store image: %w", err)
			}

			a, err := inv.CreateAsset(caller, service.CreateAssetInput{
				Name:     name,
				Category: category,
				Location: location,
				Status:   status,
				Quantity: quantity,
				Image:    storedImage,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Asset added with ID %d.\n", a.ID)
			output.AssetTable([]models.Asset{a})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "asset name (required)")
	cmd.Flags().StringVar(&category, "category", "Other", "category, e.g. Dev Board, Sensor, Instrument, Tool")
	cmd.Flags().StringVar(&location, "location", "", "storage location")
	cmd.Flags().StringVar(&status, "status", models.StatusInStock, "initial status (In Stock or Maintenance)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity on hand")
	cmd.Flags().StringVar(&image, "image", "", "path to a photo to attach")

	return cmd
}

// ==========================
// STATUS
// ==========================

func statusCmd(inv *service.Inventory, cfg config.Config) *cobra.Command {
	var status, due string

	cmd := &cobra.Command{
		Use:   "status [id]",
		Short: "Update an asset's status (admin)",
		Long: "Move an asset through its lifecycle. Valid statuses: " +
			strings.Join(models.Statuses, ", ") +
			". Checking out requires --due YYYY-MM-DD; returning to In Stock clears the due date.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid asset id: %s", args[0])
			}

			caller, err := session.Caller([]byte(cfg.SessionSecret))
			if err != nil {
				return err
			}

			a, err := inv.UpdateStatus(caller, id, status, due)
			if err != nil {
				return err
			}

			fmt.Println("Updated.")
			output.AssetTable([]models.Asset{a})
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status (required)")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD (required for Checked Out)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

// ==========================
// DELETE
// ==========================

func deleteCmd(inv *service.Inventory, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an asset permanently (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid asset id: %s", args[0])
			}

			caller, err := session.Caller([]byte(cfg.SessionSecret))
			if err != nil {
				return err
			}

			if err := inv.DeleteAsset(caller, id); err != nil {
				return err
			}

			fmt.Println("Asset deleted.")
			return nil
		},
	}
}

// ==========================
// QR
// ==========================

func qrCmd(inv *service.Inventory) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "qr [id]",
		Short: "Write a QR label PNG for an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid asset id: %s", args[0])
			}

			a, err := inv.Get(id)
			if err != nil {
				return err
			}

			png, err := qr.PNG(a)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("asset_%d_qr.png", a.ID)
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return err
			}

			fmt.Printf("QR code for %q written to %s\n", a.Name, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output PNG path (default asset_<id>_qr.png)")

	return cmd
}
