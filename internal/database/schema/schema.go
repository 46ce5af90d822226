// Package schema creates the employee table when asked to. It is meant for
// local and test databases; production tables are provisioned out of band.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"empdir/internal/database"
)

type step struct {
	Name string
	SQL  string
}

func steps(table string) []step {
	return []step{
		{
			Name: "create_table_" + table,
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  emp_id        VARCHAR(20) PRIMARY KEY,
  first_name    TEXT        NOT NULL,
  last_name     TEXT        NOT NULL,
  primary_skill TEXT        NOT NULL,
  location      TEXT        NOT NULL
);`, table),
		},
	}
}

// Ensure creates the employee table if it does not exist yet.
func Ensure(ctx context.Context, db *sql.DB, table string, log zerolog.Logger) error {
	if err := database.ValidateIdentifier(table); err != nil {
		return err
	}
	start := time.Now()
	log = log.With().Str("component", "database").Str("table", table).Logger()

	log.Info().Str("event", "db_schema_start").Str("status", "in_progress").Send()

	for _, s := range steps(table) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.Error().
				Str("event", "db_schema_failed").
				Str("status", "error").
				Str("schema_step", s.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Send()
			return fmt.Errorf("schema step %s failed: %w", s.Name, err)
		}

		log.Info().
			Str("event", "db_schema_step").
			Str("status", "success").
			Str("schema_step", s.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_schema_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()
	return nil
}
