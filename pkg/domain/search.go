package domain

import "strings"

// ContainsFold reports whether any field contains q, ignoring case.
// An empty query matches everything.
func ContainsFold(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ClientFilter selects clients by name/email and company.
type ClientFilter struct {
	Query   string
	Company string
}

func (f ClientFilter) Match(c Client) bool {
	return ContainsFold(f.Query, c.Name, c.Email) && ContainsFold(f.Company, c.Company)
}

// MatchDomain matches on the domain name or the owning client's name.
func MatchDomain(q string, d Domain, clientName string) bool {
	return ContainsFold(q, d.DomainName, clientName)
}

// MatchHosting matches on the service name or the owning client's name.
func MatchHosting(q string, h Hosting, clientName string) bool {
	return ContainsFold(q, h.ServiceName, clientName)
}

// MatchUser matches on the user's name or email.
func MatchUser(q string, u AppUser) bool {
	return ContainsFold(q, u.Name, u.Email)
}
