// Package domain is the desk data model and the rules the server and desksdk
// share: expiration classification, validation, search and CSV export.
package domain

import "time"

// Client is a customer record owned by one identity.
type Client struct {
	ID        string
	UserID    string // owning identity (token subject)
	Name      string
	Email     string
	Phone     string // optional, "" when unset
	Company   string // optional, "" when unset
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnknownClientName is shown for services whose client cannot be resolved.
const UnknownClientName = "Unknown Client"

// ClientNames indexes client names by id.
func ClientNames(clients []Client) map[string]string {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}

// ClientName resolves id in names, falling back to UnknownClientName.
func ClientName(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownClientName
}
