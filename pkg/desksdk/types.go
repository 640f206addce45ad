package desksdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	// Error is a machine readable code (e.g., "not_found", "forbidden")
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 400 when a form fails validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps field names to what is wrong with them
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Records
// ============================================================================

// Expiration is derived from the expiration date whenever a record is
// rendered. It is never stored.
type Expiration struct {
	// Status is "active", "expiring" or "expired"
	Status string `json:"status"`

	// DaysLeft is negative once the date has passed
	DaysLeft int `json:"days_left"`

	// Text is the display label: "Expired", "<n> days left" or "Active"
	Text string `json:"text"`
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Domain struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name,omitempty"`
	DomainName  string `json:"domain_name"`
	Registrar   string `json:"registrar,omitempty"`
	DNSProvider string `json:"dns_provider,omitempty"`

	// ExpirationDate is a calendar date, YYYY-MM-DD
	ExpirationDate string `json:"expiration_date"`

	// Status is the stored label chosen by the user
	Status string `json:"status"`

	Expiration Expiration `json:"expiration"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Hosting struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"client_id"`
	ClientName     string     `json:"client_name,omitempty"`
	ServiceName    string     `json:"service_name"`
	Provider       string     `json:"provider,omitempty"`
	PlanType       string     `json:"plan_type,omitempty"`
	ExpirationDate string     `json:"expiration_date"`
	Status         string     `json:"status"`
	Expiration     Expiration `json:"expiration"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// User is an application user and its role.
type User struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) IsAdmin() bool { return u.Role == "admin" }

// ============================================================================
// Requests
// ============================================================================

// ClientRequest is the body of POST /v1/clients and PUT /v1/clients/{id}.
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// DomainRequest is the body of POST /v1/domains and PUT /v1/domains/{id}.
type DomainRequest struct {
	ClientID       string `json:"client_id"`
	DomainName     string `json:"domain_name"`
	Registrar      string `json:"registrar,omitempty"`
	DNSProvider    string `json:"dns_provider,omitempty"`
	ExpirationDate string `json:"expiration_date"`
	Status         string `json:"status,omitempty"` // defaults to active
}

// HostingRequest is the body of POST /v1/hosting and PUT /v1/hosting/{id}.
type HostingRequest struct {
	ClientID       string `json:"client_id"`
	ServiceName    string `json:"service_name"`
	Provider       string `json:"provider,omitempty"`
	PlanType       string `json:"plan_type,omitempty"`
	ExpirationDate string `json:"expiration_date"`
	Status         string `json:"status,omitempty"`
}

// RoleRequest is the body of PUT /v1/users/{id}/role.
type RoleRequest struct {
	Role string `json:"role"`
}

// DevTokenRequest asks a development server to mint a token.
type DevTokenRequest struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
}

// ============================================================================
// Responses
// ============================================================================

// SessionResponse is returned by POST /v1/session.
type SessionResponse struct {
	// User is absent when the role record could not be read or created
	User *User `json:"user,omitempty"`

	IsAdmin bool `json:"is_admin"`

	// Warning is set when role setup failed; the session still works
	Warning string `json:"warning,omitempty"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

type ListDomainsResponse struct {
	Domains []Domain `json:"domains"`
}

type ListHostingResponse struct {
	Hosting []Hosting `json:"hosting"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

// DashboardResponse carries the dashboard counters.
type DashboardResponse struct {
	TotalClients     int `json:"total_clients"`
	ActiveDomains    int `json:"active_domains"`
	ActiveHosting    int `json:"active_hosting"`
	ExpiringServices int `json:"expiring_services"`

	// TotalUsers is only present for admins
	TotalUsers *int `json:"total_users,omitempty"`
}

type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies (only for /readyz).
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}
