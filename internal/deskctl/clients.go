package deskctl

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
)

func newClientsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "List and manage clients",
	}
	cmd.AddCommand(
		newClientsListCmd(c),
		newClientsAddCmd(c),
		newClientsUpdateCmd(c),
		newClientsRemoveCmd(c),
		newClientsExportCmd(c),
	)
	return cmd
}

func newClientsListCmd(c *cli) *cobra.Command {
	var q desksdk.ClientQuery
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.theme.printClients(cmd.OutOrStdout(), ws.Clients(q))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Query, "search", "s", "", "match name or email")
	cmd.Flags().StringVar(&q.Company, "company", "", "exact company")
	return cmd
}

func clientFlags(cmd *cobra.Command, req *desksdk.ClientRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "client name")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Company, "company", "", "company")
}

func newClientsAddCmd(c *cli) *cobra.Command {
	var req desksdk.ClientRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			created, err := ws.CreateClient(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created client %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	clientFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newClientsUpdateCmd(c *cli) *cobra.Command {
	var req desksdk.ClientRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a client; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			current, ok := findByID(ws.Clients(desksdk.ClientQuery{}), args[0], func(c desksdk.Client) string { return c.ID })
			if !ok {
				return fmt.Errorf("client %s not found", args[0])
			}

			f := cmd.Flags()
			merged := desksdk.ClientRequest{
				Name:    pick(f.Changed("name"), req.Name, current.Name),
				Email:   pick(f.Changed("email"), req.Email, current.Email),
				Phone:   pick(f.Changed("phone"), req.Phone, current.Phone),
				Company: pick(f.Changed("company"), req.Company, current.Company),
			}
			updated, err := ws.UpdateClient(cmd.Context(), args[0], merged)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated client %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	clientFlags(cmd, &req)
	return cmd
}

func newClientsRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a client with its domains and hosting",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := ws.DeleteClient(cmd.Context(), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted client %s\n", args[0])
			return nil
		},
	}
}

func newClientsExportCmd(c *cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every client as CSV",
		Long: `Write every client as CSV.

Without --output the file is named clients-export-YYYY-MM-DD.csv in the
current directory. Use --output - to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			name, err := ws.ExportCSV(&buf)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if output == "" {
				output = name
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d clients to %s\n", len(ws.Clients(desksdk.ClientQuery{})), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file, - for stdout")
	return cmd
}
