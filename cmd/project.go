package cmd

import (
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"os"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/models"
	"strconv"
	"strings"
)

var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects and their roles",
	Long: `
Projects and roles are the tags a draft can carry. Deleting a project also
deletes its roles, drafts keep their tags.

Usage:

	project create "Website App"
	project add-role 1 "Backend Developer"
`,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		projects, err := c.ListProjects(cmd.Context())
		if err != nil {
			return err
		}
		renderProjects(projects)
		return nil
	},
}

var projectCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		project, err := c.CreateProject(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		renderProjects([]models.Project{*project})
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a project and its roles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		if err := c.DeleteProject(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("project %d deleted\n", id)
		return nil
	},
}

var projectRolesCmd = &cobra.Command{
	Use:   "roles PROJECT_ID",
	Short: "List the roles of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		roles, err := c.ListRoles(cmd.Context(), projectID)
		if err != nil {
			return err
		}
		renderRoles(roles)
		return nil
	},
}

var projectAddRoleCmd = &cobra.Command{
	Use:   "add-role PROJECT_ID NAME",
	Short: "Add a role to a project",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		role, err := c.CreateRole(cmd.Context(), projectID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		renderRoles([]models.Role{*role})
		return nil
	},
}

var projectDeleteRoleCmd = &cobra.Command{
	Use:   "delete-role ROLE_ID",
	Short: "Delete a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := newClient(config.NewStatusDrafterConfig().GetConfigurations())
		if err := c.DeleteRole(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("role %d deleted\n", id)
		return nil
	},
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func renderProjects(projects []models.Project) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name"})
	for _, project := range projects {
		t.AppendRow(table.Row{project.ID, project.Name})
	}
	t.AppendFooter(table.Row{"Total", len(projects)})
	t.Render()
}

func renderRoles(roles []models.Role) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Project", "Name"})
	for _, role := range roles {
		t.AppendRow(table.Row{role.ID, role.ProjectID, role.Name})
	}
	t.AppendFooter(table.Row{"", "Total", len(roles)})
	t.Render()
}

func init() {
	ProjectCmd.AddCommand(projectListCmd)
	ProjectCmd.AddCommand(projectCreateCmd)
	ProjectCmd.AddCommand(projectDeleteCmd)
	ProjectCmd.AddCommand(projectRolesCmd)
	ProjectCmd.AddCommand(projectAddRoleCmd)
	ProjectCmd.AddCommand(projectDeleteRoleCmd)
}
