package desk_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/stretchr/testify/require"
)

// TestHealth verifies the probes report ok once the container is up.
func TestHealth(t *testing.T) {
	client := desksdk.NewSDKClient(setupDeskContainer(t))
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}

// TestFirstUserBecomesAdmin verifies the role bootstrap across sign ins.
func TestFirstUserBecomesAdmin(t *testing.T) {
	client := desksdk.NewSDKClient(setupDeskContainer(t))

	_, alice := signIn(t, client, "alice", "alice@example.com", "Alice Smith")
	require.True(t, alice.IsAdmin)
	require.Equal(t, "Alice Smith", alice.User.Name)

	_, bob := signIn(t, client, "bob", "bob@example.com", "")
	require.False(t, bob.IsAdmin)
	require.Equal(t, "bob", bob.User.Name, "name falls back to the email local part")

	_, again := signIn(t, client, "alice", "alice@example.com", "Alice Smith")
	require.Equal(t, alice.User.ID, again.User.ID, "repeat sign in reuses the record")
	require.True(t, again.IsAdmin)
}

// TestConcurrentFirstSignIn verifies exactly one admin emerges when several
// users sign in at once on an empty service.
func TestConcurrentFirstSignIn(t *testing.T) {
	client := desksdk.NewSDKClient(setupDeskContainer(t))
	ctx := context.Background()

	const n = 8
	sessions := make([]*desksdk.Session, n)
	for i := range n {
		tok, err := client.MintDevToken(ctx, desksdk.DevTokenRequest{
			Subject: "user-" + string(rune('a'+i)),
			Email:   "user" + string(rune('a'+i)) + "@example.com",
		})
		require.NoError(t, err)
		sessions[i] = client.NewSession(tok.AccessToken)
	}

	results := make(chan *desksdk.SessionResponse, n)
	errs := make(chan error, n)
	for _, s := range sessions {
		go func() {
			resp, err := s.StartSession(ctx)
			if err != nil {
				errs <- err
				return
			}
			results <- resp
		}()
	}

	admins := 0
	for range n {
		select {
		case err := <-errs:
			t.Fatalf("session failed: %v", err)
		case resp := <-results:
			if resp.IsAdmin {
				admins++
			}
		case <-time.After(30 * time.Second):
			t.Fatal("timed out waiting for sessions")
		}
	}
	require.Equal(t, 1, admins)
}

// TestClientLifecycle exercises CRUD, search, export and cascade delete
// through a signed in workspace.
func TestClientLifecycle(t *testing.T) {
	client := desksdk.NewSDKClient(setupDeskContainer(t))
	ctx := context.Background()
	ws, session := signInWorkspace(t, client, "alice", "alice@example.com")
	require.True(t, ws.IsAdmin())

	acme, err := ws.CreateClient(ctx, desksdk.ClientRequest{Name: "Acme", Email: "ops@acme.test", Company: "Acme Pty"})
	require.NoError(t, err)
	beta, err := ws.CreateClient(ctx, desksdk.ClientRequest{Name: "Beta, Ltd", Email: "hi@beta.test"})
	require.NoError(t, err)

	_, err = ws.CreateClient(ctx, desksdk.ClientRequest{Name: "No Email"})
	assertStatus(t, err, http.StatusBadRequest, "missing email")

	today := time.Now().UTC()
	soon := today.AddDate(0, 0, 12).Format("2006-01-02")
	later := today.AddDate(1, 0, 0).Format("2006-01-02")
	past := today.AddDate(0, 0, -2).Format("2006-01-02")

	dom, err := ws.CreateDomain(ctx, desksdk.DomainRequest{ClientID: acme.ID, DomainName: "acme.test", ExpirationDate: soon})
	require.NoError(t, err)
	require.Equal(t, "active", dom.Status)
	_, err = ws.CreateDomain(ctx, desksdk.DomainRequest{ClientID: beta.ID, DomainName: "beta.test", ExpirationDate: later})
	require.NoError(t, err)
	_, err = ws.CreateHosting(ctx, desksdk.HostingRequest{ClientID: acme.ID, ServiceName: "Acme VPS", ExpirationDate: past})
	require.NoError(t, err)

	domains := ws.Domains("")
	require.Len(t, domains, 2)
	require.Equal(t, "beta.test", domains[0].DomainName, "newest first")
	require.Equal(t, "12 days left", domains[1].Expiration.Text)
	require.Equal(t, "Expired", ws.Hosting("")[0].Expiration.Text)

	require.Len(t, ws.Domains("acme"), 1)
	require.Len(t, ws.Clients(desksdk.ClientQuery{Company: "Acme Pty"}), 1)

	stats := ws.Stats()
	require.Equal(t, 2, stats.TotalClients)
	require.Equal(t, 2, stats.ActiveDomains)
	require.Equal(t, 1, stats.ActiveHosting)
	require.Equal(t, 1, stats.ExpiringServices)

	// The server agrees with the workspace.
	dash, err := session.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, stats.TotalClients, dash.TotalClients)
	require.Equal(t, stats.ExpiringServices, dash.ExpiringServices)

	var buf bytes.Buffer
	name, err := session.ExportClientsCSV(ctx, &buf)
	require.NoError(t, err)
	require.Equal(t, "clients-export-"+today.Format("2006-01-02")+".csv", name)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Client Name,Email,Company,Phone,Created Date", lines[0])
	require.True(t, strings.HasPrefix(lines[1], `"Beta, Ltd",hi@beta.test,,,`), lines[1])

	renamed, err := ws.UpdateClient(ctx, acme.ID, desksdk.ClientRequest{Name: "Acme Corp", Email: acme.Email, Company: acme.Company})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", renamed.Name)
	require.Equal(t, "Acme Corp", ws.Domains("acme.test")[0].ClientName)

	require.NoError(t, ws.DeleteClient(ctx, acme.ID))
	require.Len(t, ws.Domains(""), 1)
	require.Empty(t, ws.Hosting(""))

	// Reloading from the server shows the same cascade.
	require.NoError(t, ws.Reload(ctx))
	require.Len(t, ws.Clients(desksdk.ClientQuery{}), 1)
	require.Len(t, ws.Domains(""), 1)
	require.Empty(t, ws.Hosting(""))

	err = ws.DeleteClient(ctx, acme.ID)
	assertStatus(t, err, http.StatusNotFound, "deleting twice")
}

// TestRoleManagement verifies only admins change roles and never their own.
func TestRoleManagement(t *testing.T) {
	client := desksdk.NewSDKClient(setupDeskContainer(t))
	ctx := context.Background()

	adminSession, admin := signIn(t, client, "alice", "alice@example.com", "")
	bobSession, bob := signIn(t, client, "bob", "bob@example.com", "")

	users, err := bobSession.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, users, 1, "standard users only see themselves")

	_, err = bobSession.SetUserRole(ctx, admin.User.ID, "standard")
	assertStatus(t, err, http.StatusForbidden, "standard user changing a role")

	_, err = adminSession.SetUserRole(ctx, admin.User.ID, "standard")
	assertStatus(t, err, http.StatusForbidden, "admin changing own role")

	updated, err := adminSession.SetUserRole(ctx, bob.User.ID, "admin")
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Role)

	users, err = bobSession.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, users, 2, "promoted users see everyone")

	dash, err := bobSession.Dashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, dash.TotalUsers)
	require.Equal(t, 2, *dash.TotalUsers)
}
