package cli

import (
	"github.com/spf13/cobra"
)

func usersCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "Search and show users",
	}
	c.AddCommand(usersSearchCmd(a), usersShowCmd(a), usersKeysCmd(a))
	return c
}

func usersSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.client.Users.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, users)
		},
	}
}

func usersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user>",
		Short: "Show a user profile (private fields when authenticated as that user)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.client.Users.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, u)
		},
	}
}

func usersKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the public keys of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := a.client.Users.Keys(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, keys)
		},
	}
}
