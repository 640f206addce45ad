package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration string
		status     domain.Status
		days       int
		text       string
	}{
		{"long past", "2023-01-01", domain.StatusExpired, -434, "Expired"},
		{"yesterday", "2024-03-09", domain.StatusExpired, -1, "Expired"},
		{"today", "2024-03-10", domain.StatusExpiring, 0, "0 days left"},
		{"tomorrow", "2024-03-11", domain.StatusExpiring, 1, "1 days left"},
		{"thirty days out", "2024-04-09", domain.StatusExpiring, 30, "30 days left"},
		{"thirty one days out", "2024-04-10", domain.StatusActive, 31, "Active"},
		{"next year", "2025-03-10", domain.StatusActive, 365, "Active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Classify(date(t, tt.expiration), now, nil)
			require.Equal(t, tt.status, got.Status)
			require.Equal(t, tt.days, got.DaysLeft)
			require.Equal(t, tt.text, got.Text)
		})
	}
}

func TestClassifyUsesLocationForToday(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 20:00 UTC on the 9th is already the 10th in Sydney.
	now := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	exp := date(t, "2024-03-09")

	require.Equal(t, domain.StatusExpiring, domain.Classify(exp, now, time.UTC).Status)
	require.Equal(t, domain.StatusExpired, domain.Classify(exp, now, sydney).Status)
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", domain.FormatDate(d))

	_, err = domain.ParseDate("2024-13-01")
	require.Error(t, err)
	_, err = domain.ParseDate("01/02/2024")
	require.Error(t, err)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	domains := []domain.Service{
		{Status: domain.StatusActive, ExpirationDate: date(t, "2024-03-20")},  // active + expiring
		{Status: domain.StatusActive, ExpirationDate: date(t, "2025-01-01")},  // active
		{Status: domain.StatusExpired, ExpirationDate: date(t, "2024-03-01")}, // neither
	}
	hosting := []domain.Service{
		{Status: domain.StatusExpiring, ExpirationDate: date(t, "2024-03-10")}, // expiring only
		{Status: domain.StatusActive, ExpirationDate: date(t, "2024-01-01")},   // stored active, derived expired
	}

	s := domain.ComputeStats(4, domains, hosting, now, nil)
	require.Equal(t, 4, s.TotalClients)
	require.Equal(t, 2, s.ActiveDomains)
	require.Equal(t, 1, s.ActiveHosting)
	require.Equal(t, 2, s.ExpiringServices)
	require.Nil(t, s.TotalUsers)
}
