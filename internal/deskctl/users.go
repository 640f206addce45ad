package deskctl

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
)

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "List users and manage roles",
	}
	cmd.AddCommand(newUsersListCmd(c), newUsersRoleCmd(c))
	return cmd
}

func newUsersListCmd(c *cli) *cobra.Command {
	var q string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users (admins see everyone)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.theme.printUsers(cmd.OutOrStdout(), ws.Users(q), ws.User())
			return nil
		},
	}
	cmd.Flags().StringVarP(&q, "search", "s", "", "match name or email")
	return cmd
}

func newUsersRoleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "role <id> <admin|standard>",
		Short:     "Change another user's role (admin only)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"admin", "standard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			u, err := ws.SetUserRole(cmd.Context(), args[0], args[1])
			switch {
			case errors.Is(err, desksdk.ErrAdminRequired):
				return errors.New("only admins can change roles")
			case errors.Is(err, desksdk.ErrSelfRoleChange):
				return errors.New("you cannot change your own role")
			case err != nil:
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", u.Email, c.theme.roleBadge(u.Role))
			return nil
		},
	}
}
