package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/lab-inventory/cmd/cli/session"
	internalauth "github.com/crucial707/lab-inventory/internal/auth"
	"github.com/crucial707/lab-inventory/internal/config"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/service"
)

// Init registers login, logout, and register on the root command.
func Init(rootCmd *cobra.Command, svc *service.Auth, cfg config.Config) {
	rootCmd.AddCommand(loginCmd(svc, cfg), logoutCmd(), registerCmd(svc))
}

// ==========================
// Login
// ==========================

func loginCmd(svc *service.Auth, cfg config.Config) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session token",
		Long:  "Authenticate against the credential store and save a session token for subsequent commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				fmt.Scanln(&username)
			}
			if password == "" {
				fmt.Print("Password: ")
				fmt.Scanln(&password)
			}

			role, err := svc.Authenticate(username, password)
			if err != nil {
				return err
			}

			token, err := internalauth.IssueToken(
				[]byte(cfg.SessionSecret),
				username,
				role,
				time.Duration(cfg.SessionTTLHours)*time.Hour,
			)
			if err != nil {
				return fmt.Errorf("failed to issue session token: %w", err)
			}
			if err := session.Save(token); err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}

			fmt.Printf("Welcome %s! Logged in as %s.\n", username, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

// ==========================
// Logout
// ==========================

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// ==========================
// Register
// ==========================

func registerCmd(svc *service.Auth) *cobra.Command {
	var username, password, secret string
	var admin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a Student account, or an Admin account when the shared admin secret is supplied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				fmt.Scanln(&username)
			}
			if password == "" {
				fmt.Print("Password: ")
				fmt.Scanln(&password)
			}

			role := models.RoleStudent
			if admin {
				role = models.RoleAdmin
			}

			u, err := svc.Register(username, password, role, secret)
			if err != nil {
				return err
			}

			fmt.Printf("Account created as %s. Please login.\n", u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().StringVar(&password, "password", "", "new password (prompted when omitted)")
	cmd.Flags().BoolVar(&admin, "admin", false, "request the Admin role")
	cmd.Flags().StringVar(&secret, "secret", "", "admin secret key (required with --admin)")

	return cmd
}
