package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmeister/py-github/internal/domain"
)

func issuesCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "issues",
		Short: "List and show issues",
	}
	c.AddCommand(issuesListCmd(a), issuesShowCmd(a))
	return c
}

func issuesListCmd(a *app) *cobra.Command {
	var state string

	c := &cobra.Command{
		Use:   "list <user> <repo>",
		Short: "List the issues of a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := a.client.Issues.List(cmd.Context(), args[0], args[1], domain.IssueState(state))
			if err != nil {
				return err
			}
			return a.print(cmd, issues)
		},
	}

	c.Flags().StringVarP(&state, "state", "s", string(domain.IssueOpen), "open|closed")
	return c
}

func issuesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user> <repo> <number>",
		Short: "Show one issue",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return &domain.OpError{
					Op:   "cli.issues.show",
					Kind: domain.KindInvalidConfig,
					Err:  fmt.Errorf("%w: issue number %q", domain.ErrInvalidConfig, args[2]),
				}
			}
			i, err := a.client.Issues.Show(cmd.Context(), args[0], args[1], n)
			if err != nil {
				return err
			}
			return a.print(cmd, i)
		},
	}
}
