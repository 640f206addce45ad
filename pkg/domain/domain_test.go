package domain_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	require.Equal(t, "Ada Lovelace", domain.DeriveName(" Ada Lovelace ", "ada@example.com"))
	require.Equal(t, "ada", domain.DeriveName("", "ada@example.com"))
	require.Equal(t, "User", domain.DeriveName("", ""))
	require.Equal(t, "User", domain.DeriveName("", "@example.com"))
}

func TestClientFilter(t *testing.T) {
	c := domain.Client{Name: "Acme Corp", Email: "ops@acme.io", Company: "Acme Holdings"}

	require.True(t, domain.ClientFilter{}.Match(c))
	require.True(t, domain.ClientFilter{Query: "acme"}.Match(c))
	require.True(t, domain.ClientFilter{Query: "OPS@"}.Match(c))
	require.True(t, domain.ClientFilter{Query: "acme", Company: "holdings"}.Match(c))
	require.False(t, domain.ClientFilter{Query: "globex"}.Match(c))
	require.False(t, domain.ClientFilter{Company: "initech"}.Match(c))
}

func TestServiceMatchers(t *testing.T) {
	names := domain.ClientNames([]domain.Client{{ID: "c1", Name: "Acme"}})

	d := domain.Domain{ClientID: "c1", DomainName: "acme.io"}
	require.True(t, domain.MatchDomain("ACME.IO", d, domain.ClientName(names, d.ClientID)))
	require.True(t, domain.MatchDomain("acme", domain.Domain{DomainName: "x.io"}, "Acme"))
	require.False(t, domain.MatchDomain("globex", d, "Acme"))

	orphan := domain.Hosting{ClientID: "missing", ServiceName: "VPS"}
	name := domain.ClientName(names, orphan.ClientID)
	require.Equal(t, domain.UnknownClientName, name)
	require.True(t, domain.MatchHosting("unknown", orphan, name))

	u := domain.AppUser{Name: "Grace", Email: "grace@example.com"}
	require.True(t, domain.MatchUser("example", u))
	require.False(t, domain.MatchUser("ada", u))
}

func TestValidateClient(t *testing.T) {
	require.Nil(t, domain.ValidateClient("Acme", "ops@acme.io"))

	errs := domain.ValidateClient("  ", "")
	require.Equal(t, "required", errs["name"])
	require.Equal(t, "required", errs["email"])

	errs = domain.ValidateClient("Acme", "not-an-email")
	require.Contains(t, errs, "email")
	require.NotContains(t, errs, "name")
}

func TestValidateDomainAndHosting(t *testing.T) {
	require.Nil(t, domain.ValidateDomain("c1", "acme.io", "2025-01-01", ""))
	require.Nil(t, domain.ValidateHosting("c1", "VPS", "2025-01-01", "expiring"))
	require.Nil(t, domain.ValidateDomain("c1", "acme.io", " 2025-01-01 ", ""), "surrounding spaces are trimmed like other fields")

	errs := domain.ValidateDomain("", "", "soon", "paused")
	require.Len(t, errs, 4)
	require.Equal(t, "required", errs["client_id"])
	require.Equal(t, "required", errs["domain_name"])
	require.Contains(t, errs["expiration_date"], "YYYY-MM-DD")
	require.Contains(t, errs, "status")

	errs = domain.ValidateHosting("c1", "", "", "active")
	require.Equal(t, "required", errs["service_name"])
	require.Equal(t, "required", errs["expiration_date"])
}

func TestParseStatusDefaultsToActive(t *testing.T) {
	s, ok := domain.ParseStatus("")
	require.True(t, ok)
	require.Equal(t, domain.StatusActive, s)

	_, ok = domain.ParseStatus("paused")
	require.False(t, ok)
}

func TestValidateRole(t *testing.T) {
	require.Nil(t, domain.ValidateRole("admin"))
	require.Nil(t, domain.ValidateRole("standard"))
	require.Contains(t, domain.ValidateRole("root"), "role")
}

func TestWriteClientsCSV(t *testing.T) {
	var buf bytes.Buffer
	created := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)

	err := domain.WriteClientsCSV(&buf, []domain.Client{{Name: "A", Email: "a@x.com", CreatedAt: created}})
	require.NoError(t, err)
	require.Equal(t, "Client Name,Email,Company,Phone,Created Date\nA,a@x.com,,,2024-05-01\n", buf.String())
}

func TestWriteClientsCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	err := domain.WriteClientsCSV(&buf, []domain.Client{{Name: "Acme, Inc", Email: "a@x.com", Company: `The "Co"`, CreatedAt: created}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"Acme, Inc",a@x.com,"The ""Co""",,2024-05-01`)
}

func TestExportFilename(t *testing.T) {
	require.Equal(t, "clients-export-2024-05-01.csv", domain.ExportFilename(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	sydney := time.FixedZone("AEST", 10*60*60)
	require.Equal(t, "clients-export-2024-05-01.csv", domain.ExportFilename(time.Date(2024, 5, 2, 8, 0, 0, 0, sydney)),
		"file name carries the UTC date")
}
