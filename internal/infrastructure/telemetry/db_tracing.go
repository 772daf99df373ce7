package telemetry

import (
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds database instrumentation settings
type DBTracingConfig struct {
	Enabled bool
	// LogFullSQL includes query parameters in spans. Keep off outside
	// development, the parameters may carry user data.
	LogFullSQL bool
	// SlowQueryThreshold marks spans above this duration as slow
	SlowQueryThreshold time.Duration
}

// DefaultDBTracingConfig returns the production defaults
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		Enabled:            false,
		LogFullSQL:         false,
		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

const queryStartKey = "telemetry:query_start"

// RegisterDBTracing installs the otelgorm plugin plus callbacks that tag
// spans with row counts, tables and slow-query markers. Record-not-found
// is routine for lookups and never marks the span as failed.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	t := &dbTracer{threshold: cfg.SlowQueryThreshold}
	if err := t.register(db); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThreshold))
	return nil
}

type dbTracer struct {
	threshold time.Duration
}

func (t *dbTracer) register(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("db_tracing:before_create", t.before),
		cb.Query().Before("gorm:query").Register("db_tracing:before_query", t.before),
		cb.Update().Before("gorm:update").Register("db_tracing:before_update", t.before),
		cb.Delete().Before("gorm:delete").Register("db_tracing:before_delete", t.before),
		cb.Row().Before("gorm:row").Register("db_tracing:before_row", t.before),
		cb.Raw().Before("gorm:raw").Register("db_tracing:before_raw", t.before),
		cb.Create().After("gorm:create").Register("db_tracing:after_create", t.after),
		cb.Query().After("gorm:query").Register("db_tracing:after_query", t.after),
		cb.Update().After("gorm:update").Register("db_tracing:after_update", t.after),
		cb.Delete().After("gorm:delete").Register("db_tracing:after_delete", t.after),
		cb.Row().After("gorm:row").Register("db_tracing:after_row", t.after),
		cb.Raw().After("gorm:raw").Register("db_tracing:after_raw", t.after),
	)
}

func (t *dbTracer) before(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (t *dbTracer) after(db *gorm.DB) {
	if db.Statement == nil || db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if v, ok := db.InstanceGet(queryStartKey); ok {
		if start, ok := v.(time.Time); ok {
			if elapsed := time.Since(start); elapsed > t.threshold {
				span.SetAttributes(
					attribute.Bool("db.slow_query", true),
					attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()))
			}
		}
	}
}
