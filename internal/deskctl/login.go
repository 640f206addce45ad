package deskctl

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
)

func newLoginCmd(c *cli) *cobra.Command {
	var (
		token    string
		req      desksdk.DevTokenRequest
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for the selected profile",
		Long: `Store credentials for the selected profile.

With --token the given bearer token from your identity provider is stored
as is. Otherwise a development token is minted by the server, which only
works when the server runs with AUTH_MODE=ephemeral.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := c.profile()

			switch {
			case token != "":
				sub, err := tokenSubject(token)
				if err != nil {
					return err
				}
				p.Token, p.Subject = token, sub

			case req.Subject != "":
				resp, err := desksdk.NewSDKClient(p.Server).MintDevToken(ctx, req)
				if err != nil {
					return fmt.Errorf("mint dev token: %w", err)
				}
				p.Token, p.Subject = resp.AccessToken, req.Subject

			default:
				return errors.New("either --token or --sub is required")
			}
			if timezone != "" {
				p.Timezone = timezone
			}
			if c.profileName != "" {
				c.cfg.Current = c.profileName
			}

			ws, err := c.workspace(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := c.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", p.Server, c.describeUser(ws.User(), p.Subject))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token issued by the identity provider")
	cmd.Flags().StringVar(&req.Subject, "sub", "", "subject for a development token")
	cmd.Flags().StringVar(&req.Email, "email", "", "email for a development token")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name for a development token")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone used to count days until expiration")
	cmd.MarkFlagsMutuallyExclusive("token", "sub")
	return cmd
}

// tokenSubject reads the sub claim without verifying the signature; the
// server verifies every request.
func tokenSubject(token string) (string, error) {
	var claims jwtx.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("token has no sub claim")
	}
	return claims.Subject, nil
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the credentials of the selected profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := c.profile()
			p.Token, p.Subject = "", ""
			if err := c.save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			u := ws.User()
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), c.describeUser(nil, c.profile().Subject))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", u.Name, u.Email, c.theme.roleBadge(u.Role))
			return nil
		},
	}
}

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show headline counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.theme.printStats(cmd.OutOrStdout(), ws.Stats())
			return nil
		},
	}
}

// describeUser is "email role", or the subject alone when the session has
// no role record.
func (c *cli) describeUser(u *desksdk.User, subject string) string {
	if u == nil {
		return subject + " " + c.theme.Subtitle.Render("(no role record)")
	}
	return u.Email + " " + c.theme.roleBadge(u.Role)
}
