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

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
	Long:  `List, add, edit, and delete projects.`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		projects, err := appInstance.ProjectStore.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		projects = query.FilterProjects(projects, filterFromFlags(cmd))
		projects = query.SortProjects(projects, sortFromFlags(cmd, query.FieldName))

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		fmt.Printf("%-12s %-28s %-10s %-9s %-12s %s\n", "ID", "Name", "Status", "Progress", "Start", "Milestones")
		fmt.Println(strings.Repeat("-", 88))
		for _, p := range projects {
			fmt.Printf("%-12s %-28s %-10s %7d%% %-12s %d/%d\n",
				truncate(p.ID, 12),
				truncate(p.Name, 28),
				p.Status,
				p.Progress,
				p.StartDate.String(),
				p.CompletedMilestones(),
				len(p.Milestones),
			)
		}

		fmt.Printf("\nTotal: %d project(s)\n", len(projects))
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clientID, _ := cmd.Flags().GetString("client")
		project := domain.NewProject(clientID, args[0])
		project.Description, _ = cmd.Flags().GetString("description")
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			project.Status = domain.ProjectStatus(status)
		}
		project.Progress, _ = cmd.Flags().GetInt("progress")

		if start, _ := cmd.Flags().GetString("start"); start != "" {
			d, err := domain.ParseDate(start)
			if err != nil {
				return err
			}
			project.StartDate = d
		}
		if end, _ := cmd.Flags().GetString("end"); end != "" {
			d, err := domain.ParseDate(end)
			if err != nil {
				return err
			}
			project.EndDate = d
		}

		// Make sure the client exists before creating the project
		if _, err := appInstance.ClientStore.GetByID(ctx, clientID); err != nil {
			return fmt.Errorf("failed to resolve client: %w", err)
		}

		created, err := appInstance.ProjectStore.Create(ctx, project)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("✓ Project created: %s (ID: %s)\n", created.Name, created.ID)
		return nil
	},
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var patch store.ProjectPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			patch.Name = &name
		}
		if cmd.Flags().Changed("description") {
			desc, _ := cmd.Flags().GetString("description")
			patch.Description = &desc
		}
		if cmd.Flags().Changed("status") {
			status, _ := cmd.Flags().GetString("status")
			s := domain.ProjectStatus(status)
			patch.Status = &s
		}
		if cmd.Flags().Changed("progress") {
			progress, _ := cmd.Flags().GetInt("progress")
			patch.Progress = &progress
		}
		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetString("start")
			d, err := domain.ParseDate(start)
			if err != nil {
				return err
			}
			patch.StartDate = &d
		}
		if cmd.Flags().Changed("end") {
			end, _ := cmd.Flags().GetString("end")
			d, err := domain.ParseDate(end)
			if err != nil {
				return err
			}
			patch.EndDate = &d
		}

		project, err := appInstance.ProjectStore.Update(ctx, args[0], patch)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		fmt.Printf("✓ Project updated: %s\n", project.Name)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		project, err := appInstance.ProjectStore.GetByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(fmt.Sprintf("Delete project %q?", project.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.ProjectStore.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		fmt.Printf("✓ Project deleted: %s\n", project.Name)
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsEditCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)

	addListFlags(projectsListCmd, query.FieldName)
	projectsListCmd.Flags().String("client", "", "Filter by client ID")

	projectsAddCmd.Flags().String("client", "", "Client ID (required)")
	projectsAddCmd.MarkFlagRequired("client")
	projectsAddCmd.Flags().String("description", "", "Project description")
	projectsAddCmd.Flags().String("status", "", "Status: active, completed, or on-hold")
	projectsAddCmd.Flags().Int("progress", 0, "Progress percentage (0-100)")
	projectsAddCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectsAddCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	projectsEditCmd.Flags().String("name", "", "New name")
	projectsEditCmd.Flags().String("description", "", "New description")
	projectsEditCmd.Flags().String("status", "", "New status")
	projectsEditCmd.Flags().Int("progress", 0, "New progress percentage")
	projectsEditCmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	projectsEditCmd.Flags().String("end", "", "New end date (YYYY-MM-DD)")

	projectsDeleteCmd.Flags().Bool("yes", false, "Skip confirmation")
}
