package app

import (
	"net/url"
	"strings"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/config"
)

// buildDSN prepares the lib/pq connection string. Prepared binary results
// break behind PgBouncer's transaction pooling, so deployments behind a
// pooler set DB_DISABLE_PREPARED_BINARY_RESULT and we tag the DSN here
// unless the operator already chose a value.
func buildDSN(cfg config.Config) string {
	if !cfg.DBDisablePreparedBinary {
		return cfg.DBURL
	}

	parsed, err := url.Parse(cfg.DBURL)
	if err != nil {
		return cfg.DBURL
	}

	query := parsed.Query()
	if !query.Has("disable_prepared_binary_result") {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// databaseName extracts the database name for the otel span attributes.
// DB_URL may arrive in URL form or in lib/pq key=value form.
func databaseName(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/"); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		if key, value, ok := strings.Cut(field, "="); ok && key == "dbname" {
			return strings.Trim(value, `"'`)
		}
	}

	return ""
}
