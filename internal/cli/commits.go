package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/github"
)

func commitsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "commits",
		Short: "List and show commits",
	}
	c.AddCommand(commitsListCmd(a), commitsShowCmd(a))
	return c
}

func commitsListCmd(a *app) *cobra.Command {
	var branch, path string

	c := &cobra.Command{
		Use:   "list <user> <repo>",
		Short: "List recent commits of a branch, optionally only those touching a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				commits []domain.Commit
				err     error
			)
			if path != "" {
				commits, err = a.client.Commits.ForFile(cmd.Context(), args[0], args[1], path, branch)
			} else {
				commits, err = a.client.Commits.ForBranch(cmd.Context(), args[0], args[1], branch)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, commits)
		},
	}

	c.Flags().StringVarP(&branch, "branch", "b", github.DefaultBranch, "branch name")
	c.Flags().StringVarP(&path, "path", "p", "", "only commits touching this file")
	return c
}

func commitsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user> <repo> <sha>",
		Short: "Show one commit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.Commits.Show(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return a.print(cmd, c)
		},
	}
}
