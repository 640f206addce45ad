package domain

import "time"

// Status is the label stored on a domain or hosting record. It is set by the
// user and never recomputed from the expiration date.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// ParseStatus accepts one of the three labels. An empty string means active.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "":
		return StatusActive, true
	case StatusActive, StatusExpiring, StatusExpired:
		return Status(s), true
	default:
		return "", false
	}
}

// Domain is a domain registration tracked for a client.
type Domain struct {
	ID             string
	UserID         string
	ClientID       string
	DomainName     string
	Registrar      string
	DNSProvider    string
	ExpirationDate time.Time // calendar date, midnight UTC
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Hosting is a hosting service tracked for a client.
type Hosting struct {
	ID             string
	UserID         string
	ClientID       string
	ServiceName    string
	Provider       string
	PlanType       string
	ExpirationDate time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Service is the part of a domain or hosting record the dashboard and the
// expiry monitor care about.
type Service struct {
	Kind           string // "domain" or "hosting"
	ID             string
	Name           string
	ExpirationDate time.Time
	Status         Status
}

func (d Domain) Service() Service {
	return Service{Kind: "domain", ID: d.ID, Name: d.DomainName, ExpirationDate: d.ExpirationDate, Status: d.Status}
}

func (h Hosting) Service() Service {
	return Service{Kind: "hosting", ID: h.ID, Name: h.ServiceName, ExpirationDate: h.ExpirationDate, Status: h.Status}
}
