package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbPingTimeout   = 5 * time.Second
	dbConnIdleTime  = 5 * time.Minute
	tracedQueryMax  = 512
	binaryResultKey = "disable_prepared_binary_result"
)

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := prepareDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(dbConnIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// prepareDSN turns off binary results for pgbouncer transaction pooling
// unless the caller already set the parameter.
func prepareDSN(raw string, disableBinary bool) string {
	if !disableBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has(binaryResultKey) {
		return raw
	}
	query.Set(binaryResultKey, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName accepts both URL and key=value DSNs.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.Trim(parsed.Path, "/ ")
	}

	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// compactQuery collapses whitespace so traced statements fit on one line.
func compactQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) > tracedQueryMax {
		return compact[:tracedQueryMax] + "..."
	}
	return compact
}
