package main

import (
	"fmt"
	"os"

	"github.com/crucial707/lab-inventory/cmd/cli/admin"
	"github.com/crucial707/lab-inventory/cmd/cli/assets"
	"github.com/crucial707/lab-inventory/cmd/cli/audit"
	authcmd "github.com/crucial707/lab-inventory/cmd/cli/auth"
	"github.com/crucial707/lab-inventory/cmd/cli/dashboard"
	"github.com/crucial707/lab-inventory/cmd/cli/root"
	"github.com/crucial707/lab-inventory/internal/config"
	"github.com/crucial707/lab-inventory/internal/logger"
	"github.com/crucial707/lab-inventory/internal/repo"
	"github.com/crucial707/lab-inventory/internal/service"
	"github.com/crucial707/lab-inventory/internal/store"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Env)
	defer logger.Sync()

	assetRepo := repo.NewAssetRepo(store.New(cfg.InventoryFile))
	auditRepo := repo.NewAuditRepo(store.New(cfg.HistoryFile))
	userRepo := repo.NewUserRepo(store.New(cfg.UsersFile))

	inventorySvc := service.NewInventory(assetRepo, auditRepo)
	authSvc := service.NewAuth(userRepo, cfg.AdminSecret)

	rootCmd := root.GetRoot()
	authcmd.Init(rootCmd, authSvc, cfg)
	assets.Init(rootCmd, inventorySvc, cfg)
	audit.Init(rootCmd, inventorySvc)
	dashboard.Init(rootCmd, inventorySvc)
	admin.Init(rootCmd, inventorySvc, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
