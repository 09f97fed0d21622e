package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset",
	Long:  `Load the demo clients, projects, and invoices, replacing current data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt("This will replace all current data with the demo dataset. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.Seed(); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}

		fmt.Println("✓ Demo data loaded")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	Long:  `Delete all clients, projects, and invoices from the localstore.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt("This will delete ALL data (clients, projects, invoices). Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.Reset(); err != nil {
			return fmt.Errorf("failed to reset data: %w", err)
		}

		fmt.Println("All data has been deleted.")
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("yes", false, "Skip confirmation")
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
