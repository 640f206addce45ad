// Package deskctl is the command line client for the client desk service.
package deskctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

var Version = "dev"

var errNotLoggedIn = errors.New("not logged in, run `deskctl login` first")

// cli carries state shared by every subcommand.
type cli struct {
	configPath  string
	profileName string
	server      string
	verbose     bool

	cfg    *Config
	logger *slog.Logger
	theme  theme
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{theme: defaultTheme()}

	root := &cobra.Command{
		Use:          "deskctl",
		Short:        "Manage clients, domains and hosting from the terminal",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/deskctl/config.yaml)")
	root.PersistentFlags().StringVarP(&c.profileName, "profile", "p", "", "profile name (default: current profile)")
	root.PersistentFlags().StringVar(&c.server, "server", "", "server base URL, overrides the profile")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log SDK activity to stderr")

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newDashboardCmd(c),
		newClientsCmd(c),
		newDomainsCmd(c),
		newHostingCmd(c),
		newUsersCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		c.configPath = path
	}

	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Commands report failures themselves; SDK logs only show with -v.
	out := io.Discard
	if c.verbose {
		out = cmd.ErrOrStderr()
	}
	c.logger = slogx.New(slogx.Config{
		Service: "deskctl",
		Version: Version,
		Env:     "cli",
		Level:   "debug",
		Format:  "text",
		Output:  out,
	})
	return nil
}

// profile is the selected profile with the --server override applied.
func (c *cli) profile() *Profile {
	p := c.cfg.Profile(c.profileName)
	if c.server != "" {
		p.Server = c.server
	}
	if p.Server == "" {
		p.Server = "http://localhost:8080"
	}
	return p
}

func (c *cli) save() error {
	return c.cfg.Save(c.configPath)
}

// workspace signs into the selected profile and loads every collection.
func (c *cli) workspace(ctx context.Context, errOut io.Writer) (*desksdk.Workspace, error) {
	p := c.profile()
	if p.Token == "" {
		return nil, errNotLoggedIn
	}

	ws := desksdk.NewWorkspace(desksdk.NewSDKClient(p.Server).NewSession(""), c.logger)
	if p.Timezone != "" {
		loc, err := time.LoadLocation(p.Timezone)
		if err != nil {
			return nil, fmt.Errorf("profile timezone %q: %w", p.Timezone, err)
		}
		ws.Location = loc
	}

	err := ws.HandleAuthEvent(ctx, desksdk.AuthEvent{
		Kind:    desksdk.SignedIn,
		Token:   p.Token,
		Subject: p.Subject,
	})
	if err != nil {
		return nil, err
	}
	if !ws.SignedIn() {
		return nil, errors.New("sign in failed")
	}
	// A session without a role record and without a warning means the
	// session request itself failed. With a warning the user carries on
	// with least privilege.
	w := ws.Warning()
	if ws.User() == nil && w == "" {
		return nil, errors.New("sign in failed: could not start a session, run with -v for details")
	}
	if w != "" {
		fmt.Fprintln(errOut, c.theme.Warning.Render("warning: "+w))
	}
	return ws, nil
}
