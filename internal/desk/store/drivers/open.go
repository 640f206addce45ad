// Package drivers selects a store implementation from a DATABASE_URL.
package drivers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/postgres"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqlite"
)

// Open returns the store for databaseURL. Accepted forms:
//
//	sqlite://relative/path.db, sqlite:///absolute/path.db
//	postgres://... or postgresql://...
//	a bare file path (SQLite)
func Open(databaseURL string) (store.Store, error) {
	driver, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	switch driver {
	case "postgres":
		return postgres.NewStore(dsn)
	default:
		return sqlite.NewStore(dsn)
	}
}

// ParseURL splits databaseURL into a driver name and a DSN for that driver.
func ParseURL(databaseURL string) (driver, dsn string, err error) {
	if databaseURL == "" {
		return "", "", fmt.Errorf("drivers: empty database url")
	}

	u, perr := url.Parse(databaseURL)
	if perr != nil || u.Scheme == "" || u.Scheme == "file" {
		return "sqlite", sqlite.DSN(databaseURL), nil
	}

	switch u.Scheme {
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(databaseURL, u.Scheme+"://")
		if path == "" {
			return "", "", fmt.Errorf("drivers: sqlite url %q has no path", databaseURL)
		}
		return "sqlite", sqlite.DSN(path), nil
	case "postgres", "postgresql":
		return "postgres", databaseURL, nil
	default:
		return "", "", fmt.Errorf("drivers: unsupported database scheme %q", u.Scheme)
	}
}
