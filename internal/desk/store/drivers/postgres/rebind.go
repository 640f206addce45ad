package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
)

// Rebind wraps db so that every query has its '?' placeholders rewritten to
// $1, $2, ... before execution.
func Rebind(db gen.DBTX) gen.DBTX {
	return rebinder{db: db}
}

type rebinder struct {
	db gen.DBTX
}

func (r rebinder) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.db.ExecContext(ctx, RebindQuery(query), args...)
}

func (r rebinder) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return r.db.PrepareContext(ctx, RebindQuery(query))
}

func (r rebinder) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, RebindQuery(query), args...)
}

func (r rebinder) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return r.db.QueryRowContext(ctx, RebindQuery(query), args...)
}

// RebindQuery converts '?' placeholders to $n. Question marks inside single
// quoted literals and "--" comments are left alone.
func RebindQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote, inComment := false, false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case inQuote:
			if c == '\'' {
				inQuote = false
			}
		case c == '\'':
			inQuote = true
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			inComment = true
		case c == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
