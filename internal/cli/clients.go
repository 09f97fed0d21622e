package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/andy/freelink/internal/store"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, edit, and delete clients.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clients, err := appInstance.ClientStore.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		clients = query.FilterClients(clients, filterFromFlags(cmd))
		clients = query.SortClients(clients, sortFromFlags(cmd, query.FieldName))

		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		fmt.Printf("%-12s %-24s %-22s %-10s %s\n", "ID", "Name", "Company", "Status", "Tags")
		fmt.Println(strings.Repeat("-", 86))
		for _, client := range clients {
			fmt.Printf("%-12s %-24s %-22s %-10s %s\n",
				truncate(client.ID, 12),
				truncate(client.Name, 24),
				truncate(client.Company, 22),
				client.Status,
				strings.Join(client.Tags, ", "),
			)
		}

		fmt.Printf("\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		email, _ := cmd.Flags().GetString("email")
		client := domain.NewClient(args[0], email)
		client.Company, _ = cmd.Flags().GetString("company")
		client.Phone, _ = cmd.Flags().GetString("phone")
		client.Notes, _ = cmd.Flags().GetString("notes")
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			client.Status = domain.ClientStatus(status)
		}
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			client.Tags = tags
		}

		created, err := appInstance.ClientStore.Create(ctx, client)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		fmt.Printf("✓ Client created: %s (ID: %s)\n", created.Name, created.ID)
		return nil
	},
}

var clientsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var patch store.ClientPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			patch.Name = &name
		}
		if cmd.Flags().Changed("company") {
			company, _ := cmd.Flags().GetString("company")
			patch.Company = &company
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			patch.Email = &email
		}
		if cmd.Flags().Changed("phone") {
			phone, _ := cmd.Flags().GetString("phone")
			patch.Phone = &phone
		}
		if cmd.Flags().Changed("status") {
			status, _ := cmd.Flags().GetString("status")
			s := domain.ClientStatus(status)
			patch.Status = &s
		}
		if cmd.Flags().Changed("tags") {
			tags, _ := cmd.Flags().GetStringSlice("tags")
			patch.Tags = &tags
		}
		if cmd.Flags().Changed("notes") {
			notes, _ := cmd.Flags().GetString("notes")
			patch.Notes = &notes
		}

		client, err := appInstance.ClientStore.Update(ctx, args[0], patch)
		if err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		fmt.Printf("✓ Client updated: %s\n", client.Name)
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := appInstance.ClientStore.GetByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(fmt.Sprintf("Delete client %q? Their invoices and projects are kept.", client.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.ClientStore.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		fmt.Printf("✓ Client deleted: %s\n", client.Name)
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsEditCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)

	addListFlags(clientsListCmd, query.FieldName)

	clientsAddCmd.Flags().String("email", "", "Client email (required)")
	clientsAddCmd.MarkFlagRequired("email")
	clientsAddCmd.Flags().String("company", "", "Company name")
	clientsAddCmd.Flags().String("phone", "", "Phone number")
	clientsAddCmd.Flags().String("status", "", "Status: active, inactive, or lead")
	clientsAddCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	clientsAddCmd.Flags().String("notes", "", "Notes about the client")

	clientsEditCmd.Flags().String("name", "", "New name")
	clientsEditCmd.Flags().String("company", "", "New company")
	clientsEditCmd.Flags().String("email", "", "New email")
	clientsEditCmd.Flags().String("phone", "", "New phone")
	clientsEditCmd.Flags().String("status", "", "New status")
	clientsEditCmd.Flags().StringSlice("tags", nil, "New tags")
	clientsEditCmd.Flags().String("notes", "", "New notes")

	clientsDeleteCmd.Flags().Bool("yes", false, "Skip confirmation")
}
