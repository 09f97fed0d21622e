package cli

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/andy/freelink/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the client portal",
	Long: `Log in with a demo portal account. The session token is stored in the
system keyring and the localstore.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		session, err := appInstance.AuthService.Login(ctx, args[0], string(password))
		if err != nil {
			return err
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", session.User.Name, session.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the client portal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := appInstance.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current portal session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		session, err := appInstance.AuthService.Current(ctx)
		if errors.Is(err, auth.ErrNotAuthenticated) {
			fmt.Println("Not logged in.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s> (role: %s, client: %s)\n",
			session.User.Name, session.User.Email, session.User.Role, session.ClientID)
		return nil
	},
}
