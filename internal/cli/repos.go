package cli

import (
	"github.com/spf13/cobra"
)

func reposCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "repos",
		Short: "List and show repositories",
	}
	c.AddCommand(reposListCmd(a), reposShowCmd(a), reposWatchedCmd(a), reposBranchesCmd(a))
	return c
}

func reposListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <user>",
		Short: "List the repositories of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := a.client.Repos.ForUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, repos)
		},
	}
}

func reposShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user> <repo>",
		Short: "Show one repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.client.Repos.Show(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(cmd, r)
		},
	}
}

func reposWatchedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watched <user>",
		Short: "List the repositories a user watches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := a.client.Repos.Watched(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, repos)
		},
	}
}

func reposBranchesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "branches <user> <repo>",
		Short: "List branches and their head commits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.client.Repos.Branches(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(cmd, b)
		},
	}
}
