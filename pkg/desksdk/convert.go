package desksdk

import (
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

// Conversions between wire records and domain records. The server renders
// domain records with these; the workspace goes the other way to reuse the
// same classification, filtering and export code.

func ClientFromDomain(c domain.Client) Client {
	return Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c Client) toDomain() domain.Client {
	return domain.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ExpirationFor classifies date (YYYY-MM-DD) at now. Unparseable dates are
// reported as expired with no day count.
func ExpirationFor(date string, now time.Time, loc *time.Location) Expiration {
	d, err := domain.ParseDate(date)
	if err != nil {
		return Expiration{Status: string(domain.StatusExpired), Text: "Expired"}
	}
	return expirationFrom(domain.Classify(d, now, loc))
}

func expirationFrom(e domain.Expiration) Expiration {
	return Expiration{Status: string(e.Status), DaysLeft: e.DaysLeft, Text: e.Text}
}

// DomainFromDomain renders d with its client's name and its expiration at now.
func DomainFromDomain(d domain.Domain, clientName string, now time.Time, loc *time.Location) Domain {
	return Domain{
		ID:             d.ID,
		ClientID:       d.ClientID,
		ClientName:     clientName,
		DomainName:     d.DomainName,
		Registrar:      d.Registrar,
		DNSProvider:    d.DNSProvider,
		ExpirationDate: domain.FormatDate(d.ExpirationDate),
		Status:         string(d.Status),
		Expiration:     expirationFrom(domain.Classify(d.ExpirationDate, now, loc)),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (d Domain) toDomain() domain.Domain {
	exp, _ := domain.ParseDate(d.ExpirationDate)
	return domain.Domain{
		ID:             d.ID,
		ClientID:       d.ClientID,
		DomainName:     d.DomainName,
		Registrar:      d.Registrar,
		DNSProvider:    d.DNSProvider,
		ExpirationDate: exp,
		Status:         domain.Status(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func HostingFromDomain(h domain.Hosting, clientName string, now time.Time, loc *time.Location) Hosting {
	return Hosting{
		ID:             h.ID,
		ClientID:       h.ClientID,
		ClientName:     clientName,
		ServiceName:    h.ServiceName,
		Provider:       h.Provider,
		PlanType:       h.PlanType,
		ExpirationDate: domain.FormatDate(h.ExpirationDate),
		Status:         string(h.Status),
		Expiration:     expirationFrom(domain.Classify(h.ExpirationDate, now, loc)),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func (h Hosting) toDomain() domain.Hosting {
	exp, _ := domain.ParseDate(h.ExpirationDate)
	return domain.Hosting{
		ID:             h.ID,
		ClientID:       h.ClientID,
		ServiceName:    h.ServiceName,
		Provider:       h.Provider,
		PlanType:       h.PlanType,
		ExpirationDate: exp,
		Status:         domain.Status(h.Status),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func UserFromDomain(u domain.AppUser) User {
	return User{
		ID:        u.ID,
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u User) toDomain() domain.AppUser {
	return domain.AppUser{
		ID:        u.ID,
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func DashboardFromStats(s domain.Stats) DashboardResponse {
	return DashboardResponse{
		TotalClients:     s.TotalClients,
		ActiveDomains:    s.ActiveDomains,
		ActiveHosting:    s.ActiveHosting,
		ExpiringServices: s.ExpiringServices,
		TotalUsers:       s.TotalUsers,
	}
}
