package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrDomainNotFound  = errors.New("domain not found")
	ErrHostingNotFound = errors.New("hosting not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoAppUser       = errors.New("no user record for this identity")
	ErrForbidden       = errors.New("admin role required")
	ErrSelfRoleChange  = errors.New("cannot change your own role")
)

// ValidationError carries field-level problems with a create or update form.
type ValidationError struct {
	Fields domain.ValidationErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func invalid(v domain.ValidationErrors) error {
	if v == nil {
		return nil
	}
	return &ValidationError{Fields: v}
}

// Clock is embedded by services that stamp or classify records.
type Clock struct {
	Now      func() time.Time // defaults to time.Now
	Location *time.Location   // calendar used for day counts, defaults to UTC
}

func (c Clock) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

func (c Clock) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

// NowIn returns the current instant and the calendar it is classified in.
func (c Clock) NowIn() (time.Time, *time.Location) {
	return c.now(), c.location()
}
