package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is the relation whose presence marks the schema as applied.
const sentinelTable = "public.receipts"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_receipts",
		SQL: `CREATE TABLE IF NOT EXISTS receipts (
  id               UUID           PRIMARY KEY DEFAULT uuid_generate_v4(),
  filename         TEXT           NOT NULL,
  storage_path     TEXT           NOT NULL UNIQUE,
  size             BIGINT         NOT NULL CHECK (size >= 0),
  content_type     TEXT           NOT NULL,
  seller_name      TEXT           NOT NULL,
  buyer_name       TEXT           NOT NULL,
  registration_no  TEXT           NOT NULL,
  advance_payment  NUMERIC(20, 0) NOT NULL,
  amount_in_words  TEXT           NOT NULL,
  issued_at        TIMESTAMPTZ    NOT NULL,
  created_at       TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_receipts_registration_no",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receipts_registration_no ON receipts (registration_no);`,
	},
	{
		Name: "create_index_receipts_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receipts_created_at ON receipts (created_at);`,
	},
}

// EnsureMigrated creates the receipts schema unless the sentinel table
// already exists. Steps are idempotent so a partially applied run can be
// retried.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check")

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("reason", "sentinel check"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return nil
	}

	log.Info("db_migration_start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
