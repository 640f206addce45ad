package desksdk

import "github.com/aussiebroadwan/clientdesk/pkg/domain"

// Validate checks the client form. Returns a map of field names to error
// messages, or nil if all fields are valid.
func (r ClientRequest) Validate() map[string]string {
	return domain.ValidateClient(r.Name, r.Email)
}

func (r DomainRequest) Validate() map[string]string {
	return domain.ValidateDomain(r.ClientID, r.DomainName, r.ExpirationDate, r.Status)
}

func (r HostingRequest) Validate() map[string]string {
	return domain.ValidateHosting(r.ClientID, r.ServiceName, r.ExpirationDate, r.Status)
}

func (r RoleRequest) Validate() map[string]string {
	return domain.ValidateRole(r.Role)
}
