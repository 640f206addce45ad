package deskctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
)

func newDomainsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "List and manage domain registrations",
	}
	cmd.AddCommand(
		newDomainsListCmd(c),
		newDomainsAddCmd(c),
		newDomainsUpdateCmd(c),
		newDomainsRemoveCmd(c),
	)
	return cmd
}

func newDomainsListCmd(c *cli) *cobra.Command {
	var q string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List domains with their expiration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.theme.printDomains(cmd.OutOrStdout(), ws.Domains(q))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q, "search", "s", "", "match domain or client name")
	return cmd
}

func domainFlags(cmd *cobra.Command, req *desksdk.DomainRequest) {
	cmd.Flags().StringVar(&req.ClientID, "client", "", "owning client id")
	cmd.Flags().StringVar(&req.DomainName, "name", "", "domain name")
	cmd.Flags().StringVar(&req.Registrar, "registrar", "", "registrar")
	cmd.Flags().StringVar(&req.DNSProvider, "dns", "", "DNS provider")
	cmd.Flags().StringVar(&req.ExpirationDate, "expires", "", "expiration date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Status, "status", "", "active, expiring or expired")
}

func newDomainsAddCmd(c *cli) *cobra.Command {
	var req desksdk.DomainRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a domain for a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d, err := ws.CreateDomain(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created domain %s (%s) %s\n", d.DomainName, d.ID, c.theme.expirationBadge(d.Expiration))
			return nil
		},
	}
	domainFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("expires")
	return cmd
}

func newDomainsUpdateCmd(c *cli) *cobra.Command {
	var req desksdk.DomainRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a domain; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cur, ok := findByID(ws.Domains(""), args[0], func(d desksdk.Domain) string { return d.ID })
			if !ok {
				return fmt.Errorf("domain %s not found", args[0])
			}

			f := cmd.Flags()
			merged := desksdk.DomainRequest{
				ClientID:       pick(f.Changed("client"), req.ClientID, cur.ClientID),
				DomainName:     pick(f.Changed("name"), req.DomainName, cur.DomainName),
				Registrar:      pick(f.Changed("registrar"), req.Registrar, cur.Registrar),
				DNSProvider:    pick(f.Changed("dns"), req.DNSProvider, cur.DNSProvider),
				ExpirationDate: pick(f.Changed("expires"), req.ExpirationDate, cur.ExpirationDate),
				Status:         pick(f.Changed("status"), req.Status, cur.Status),
			}
			d, err := ws.UpdateDomain(cmd.Context(), args[0], merged)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated domain %s (%s) %s\n", d.DomainName, d.ID, c.theme.expirationBadge(d.Expiration))
			return nil
		},
	}
	domainFlags(cmd, &req)
	return cmd
}

func newDomainsRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a domain",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := ws.DeleteDomain(cmd.Context(), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted domain %s\n", args[0])
			return nil
		},
	}
}

func newHostingCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosting",
		Short: "List and manage hosting services",
	}
	cmd.AddCommand(
		newHostingListCmd(c),
		newHostingAddCmd(c),
		newHostingUpdateCmd(c),
		newHostingRemoveCmd(c),
	)
	return cmd
}

func newHostingListCmd(c *cli) *cobra.Command {
	var q string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List hosting services with their expiration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.theme.printHosting(cmd.OutOrStdout(), ws.Hosting(q))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q, "search", "s", "", "match service or client name")
	return cmd
}

func hostingFlags(cmd *cobra.Command, req *desksdk.HostingRequest) {
	cmd.Flags().StringVar(&req.ClientID, "client", "", "owning client id")
	cmd.Flags().StringVar(&req.ServiceName, "name", "", "service name")
	cmd.Flags().StringVar(&req.Provider, "provider", "", "hosting provider")
	cmd.Flags().StringVar(&req.PlanType, "plan", "", "plan type")
	cmd.Flags().StringVar(&req.ExpirationDate, "expires", "", "expiration date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Status, "status", "", "active, expiring or expired")
}

func newHostingAddCmd(c *cli) *cobra.Command {
	var req desksdk.HostingRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a hosting service for a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			h, err := ws.CreateHosting(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created hosting %s (%s) %s\n", h.ServiceName, h.ID, c.theme.expirationBadge(h.Expiration))
			return nil
		},
	}
	hostingFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("expires")
	return cmd
}

func newHostingUpdateCmd(c *cli) *cobra.Command {
	var req desksdk.HostingRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a hosting service; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cur, ok := findByID(ws.Hosting(""), args[0], func(h desksdk.Hosting) string { return h.ID })
			if !ok {
				return fmt.Errorf("hosting service %s not found", args[0])
			}

			f := cmd.Flags()
			merged := desksdk.HostingRequest{
				ClientID:       pick(f.Changed("client"), req.ClientID, cur.ClientID),
				ServiceName:    pick(f.Changed("name"), req.ServiceName, cur.ServiceName),
				Provider:       pick(f.Changed("provider"), req.Provider, cur.Provider),
				PlanType:       pick(f.Changed("plan"), req.PlanType, cur.PlanType),
				ExpirationDate: pick(f.Changed("expires"), req.ExpirationDate, cur.ExpirationDate),
				Status:         pick(f.Changed("status"), req.Status, cur.Status),
			}
			h, err := ws.UpdateHosting(cmd.Context(), args[0], merged)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated hosting %s (%s) %s\n", h.ServiceName, h.ID, c.theme.expirationBadge(h.Expiration))
			return nil
		},
	}
	hostingFlags(cmd, &req)
	return cmd
}

func newHostingRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a hosting service",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := ws.DeleteHosting(cmd.Context(), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted hosting service %s\n", args[0])
			return nil
		},
	}
}

