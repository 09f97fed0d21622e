package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `List, create, inspect, and export invoices, and record payments.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoices, err := appInstance.InvoiceService.ListInvoices(ctx, filterFromFlags(cmd), sortFromFlags(cmd, query.FieldIssueDate))
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		fmt.Printf("%-16s %-24s %-12s %-12s %-10s %12s\n", "ID", "Client", "Issued", "Due", "Status", "Total")
		fmt.Println(strings.Repeat("-", 92))
		for _, inv := range invoices {
			fmt.Printf("%-16s %-24s %-12s %-12s %-10s %12.2f\n",
				truncate(inv.ID, 16),
				truncate(inv.ClientName, 24),
				inv.IssueDate.String(),
				inv.DueDate.String(),
				inv.Status,
				inv.Total,
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(invoices))
		return nil
	},
}

var invoicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new invoice",
	Long: `Create a new invoice for a client.

Each --item takes the form "description:quantity:rate", for example:
  freelink invoices create --client 1 --item "UI/UX Design:20:120" --tax 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clientID, _ := cmd.Flags().GetString("client")

		issue := domain.Today()
		if s, _ := cmd.Flags().GetString("issue"); s != "" {
			d, err := domain.ParseDate(s)
			if err != nil {
				return err
			}
			issue = d
		}
		due := issue.AddDays(appInstance.Config.Invoice.DefaultDueDays)
		if s, _ := cmd.Flags().GetString("due"); s != "" {
			d, err := domain.ParseDate(s)
			if err != nil {
				return err
			}
			due = d
		}

		invoice := domain.NewInvoice(clientID, issue, due)
		invoice.Notes, _ = cmd.Flags().GetString("notes")
		invoice.Tax, _ = cmd.Flags().GetFloat64("tax")
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			invoice.Status = domain.InvoiceStatus(status)
		}

		specs, _ := cmd.Flags().GetStringArray("item")
		for _, spec := range specs {
			item, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			invoice.Items = append(invoice.Items, item)
		}

		created, err := appInstance.InvoiceService.CreateInvoice(ctx, invoice)
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		fmt.Printf("✓ Invoice created: %s for %s\n", created.ID, created.ClientName)
		fmt.Printf("  Subtotal: $%.2f  Tax: $%.2f  Total: $%.2f\n", created.Subtotal, created.Tax, created.Total)
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show invoice details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		inv, err := appInstance.InvoiceService.GetInvoice(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		fmt.Printf("Invoice %s (%s)\n", inv.ID, inv.Status)
		fmt.Printf("Client:  %s\n", inv.ClientName)
		fmt.Printf("Issued:  %s    Due: %s\n\n", inv.IssueDate, inv.DueDate)

		fmt.Printf("%-40s %8s %10s %12s\n", "Description", "Qty", "Rate", "Amount")
		fmt.Println(strings.Repeat("-", 74))
		for _, item := range inv.Items {
			fmt.Printf("%-40s %8.2f %10.2f %12.2f\n",
				truncate(item.Description, 40), item.Quantity, item.Rate, item.Amount)
		}
		fmt.Println(strings.Repeat("-", 74))
		fmt.Printf("%60s %12.2f\n", "Subtotal:", inv.Subtotal)
		fmt.Printf("%60s %12.2f\n", "Tax:", inv.Tax)
		fmt.Printf("%60s %12.2f\n", "Total:", inv.Total)

		if len(inv.Payments) > 0 {
			fmt.Println("\nPayments:")
			for _, p := range inv.Payments {
				fmt.Printf("  %s  $%.2f  %s  %s\n", p.Date, p.Amount, p.Method, p.Reference)
			}
			fmt.Printf("  Outstanding: $%.2f\n", domain.Round2(inv.Total-inv.PaidAmount()))
		}
		if inv.Notes != "" {
			fmt.Printf("\nNotes: %s\n", inv.Notes)
		}
		return nil
	},
}

var invoicesPayCmd = &cobra.Command{
	Use:   "pay [id]",
	Short: "Record a payment against an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		amount, _ := cmd.Flags().GetFloat64("amount")
		method, _ := cmd.Flags().GetString("method")
		reference, _ := cmd.Flags().GetString("reference")

		payment := domain.Payment{
			Amount:    amount,
			Method:    domain.PaymentMethod(method),
			Reference: reference,
		}
		if s, _ := cmd.Flags().GetString("date"); s != "" {
			d, err := domain.ParseDate(s)
			if err != nil {
				return err
			}
			payment.Date = d
		}

		inv, err := appInstance.InvoiceService.RecordPayment(ctx, args[0], payment)
		if err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		fmt.Printf("✓ Payment of $%.2f recorded on %s\n", amount, inv.ID)
		if inv.Status == domain.InvoiceStatusPaid {
			fmt.Println("  Invoice is now fully paid.")
		} else {
			fmt.Printf("  Outstanding: $%.2f\n", domain.Round2(inv.Total-inv.PaidAmount()))
		}
		return nil
	},
}

var invoicesStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Set an invoice's status",
	Long:  `Set an invoice's status: draft, pending, paid, overdue, or cancelled.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		inv, err := appInstance.InvoiceService.SetStatus(ctx, args[0], domain.InvoiceStatus(args[1]))
		if err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}

		fmt.Printf("✓ Invoice %s is now %s\n", inv.ID, inv.Status)
		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export an invoice as PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = filepath.Join(appInstance.Config.Invoice.OutputDir, args[0]+".pdf")
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()

		if err := appInstance.InvoiceService.ExportPDF(ctx, args[0], f); err != nil {
			os.Remove(output)
			return fmt.Errorf("failed to export invoice: %w", err)
		}

		fmt.Printf("✓ Invoice exported to %s\n", output)
		return nil
	},
}

var invoicesCheckOverdueCmd = &cobra.Command{
	Use:   "check-overdue",
	Short: "Mark pending invoices past their due date as overdue",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		n, err := appInstance.InvoiceService.CheckOverdue(ctx)
		if err != nil {
			return fmt.Errorf("failed to check overdue invoices: %w", err)
		}

		if n == 0 {
			fmt.Println("No invoices became overdue.")
		} else {
			fmt.Printf("✓ %d invoice(s) marked overdue\n", n)
		}
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		inv, err := appInstance.InvoiceService.GetInvoice(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(fmt.Sprintf("Delete invoice %s ($%.2f)?", inv.ID, inv.Total)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.InvoiceService.DeleteInvoice(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}

		fmt.Printf("✓ Invoice deleted: %s\n", inv.ID)
		return nil
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesCreateCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesPayCmd)
	invoicesCmd.AddCommand(invoicesStatusCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)
	invoicesCmd.AddCommand(invoicesCheckOverdueCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)

	addListFlags(invoicesListCmd, query.FieldIssueDate)
	invoicesListCmd.Flags().String("client", "", "Filter by client ID")

	invoicesCreateCmd.Flags().String("client", "", "Client ID (required)")
	invoicesCreateCmd.MarkFlagRequired("client")
	invoicesCreateCmd.Flags().StringArray("item", nil, `Line item as "description:quantity:rate" (repeatable)`)
	invoicesCreateCmd.MarkFlagRequired("item")
	invoicesCreateCmd.Flags().Float64("tax", 0, "Tax amount")
	invoicesCreateCmd.Flags().String("issue", "", "Issue date (YYYY-MM-DD, default today)")
	invoicesCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, default issue + configured due days)")
	invoicesCreateCmd.Flags().String("status", "", "Initial status (default draft)")
	invoicesCreateCmd.Flags().String("notes", "", "Invoice notes")

	invoicesPayCmd.Flags().Float64("amount", 0, "Payment amount (required)")
	invoicesPayCmd.MarkFlagRequired("amount")
	invoicesPayCmd.Flags().String("method", "manual", "Payment method: credit_card, bank_transfer, or manual")
	invoicesPayCmd.Flags().String("reference", "", "Payment reference")
	invoicesPayCmd.Flags().String("date", "", "Payment date (YYYY-MM-DD, default today)")

	invoicesExportCmd.Flags().String("output", "", "Output file path")

	invoicesDeleteCmd.Flags().Bool("yes", false, "Skip confirmation")
}
