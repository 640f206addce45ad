package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ClientsCSVHeader is the first row of a client export.
var ClientsCSVHeader = []string{"Client Name", "Email", "Company", "Phone", "Created Date"}

// WriteClientsCSV writes one row per client in the given order. Fields are
// quoted per RFC 4180 when needed.
func WriteClientsCSV(w io.Writer, clients []Client) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ClientsCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range clients {
		row := []string{c.Name, c.Email, c.Company, c.Phone, FormatDate(c.CreatedAt.UTC())}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename names an export produced at now. The date is the UTC
// calendar date whatever the caller's zone.
func ExportFilename(now time.Time) string {
	return "clients-export-" + FormatDate(now.UTC()) + ".csv"
}
