package deskctl

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
)

// describe flattens field errors into one line so the user sees every
// rejected flag at once.
func describe(err error) error {
	details := desksdk.ValidationDetails(err)
	if len(details) == 0 {
		return err
	}
	parts := make([]string, 0, len(details))
	for _, field := range slices.Sorted(maps.Keys(details)) {
		parts = append(parts, field+": "+details[field])
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}

func pick(changed bool, flag, current string) string {
	if changed {
		return flag
	}
	return current
}

func findByID[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
