package domain

import "strings"

const (
	reasonRequired = "required"
	reasonTooLong  = "too long (max 255)"
)

// ValidationErrors maps a field name to what is wrong with it.
type ValidationErrors map[string]string

func (v ValidationErrors) orNil() ValidationErrors {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) required(field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		v[field] = reasonRequired
	case len(value) > 255:
		v[field] = reasonTooLong
	}
}

func (v ValidationErrors) date(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v[field] = reasonRequired
		return
	}
	if _, err := ParseDate(value); err != nil {
		v[field] = "must be a date (YYYY-MM-DD)"
	}
}

func (v ValidationErrors) status(field, value string) {
	if _, ok := ParseStatus(value); !ok {
		v[field] = "must be one of active, expiring, expired"
	}
}

// ValidateClient checks a client form.
func ValidateClient(name, email string) ValidationErrors {
	v := ValidationErrors{}
	v.required("name", name)
	v.required("email", email)
	if _, ok := v["email"]; !ok && !strings.Contains(email, "@") {
		v["email"] = "must be an email address"
	}
	return v.orNil()
}

// ValidateDomain checks a domain form.
func ValidateDomain(clientID, domainName, expirationDate, status string) ValidationErrors {
	v := ValidationErrors{}
	v.required("client_id", clientID)
	v.required("domain_name", domainName)
	v.date("expiration_date", expirationDate)
	v.status("status", status)
	return v.orNil()
}

// ValidateHosting checks a hosting form.
func ValidateHosting(clientID, serviceName, expirationDate, status string) ValidationErrors {
	v := ValidationErrors{}
	v.required("client_id", clientID)
	v.required("service_name", serviceName)
	v.date("expiration_date", expirationDate)
	v.status("status", status)
	return v.orNil()
}

// ValidateRole checks a role change.
func ValidateRole(role string) ValidationErrors {
	if _, ok := ParseRole(role); !ok {
		return ValidationErrors{"role": "must be admin or standard"}
	}
	return nil
}
