package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("piwikpro-bridge/journal")

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database described by cfg and makes sure the
// events table exists.
func NewPostgres(ctx context.Context, cfg Config) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	p := &Postgres{pool: pool}

	err = p.initialize(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return p, nil
}

func (p *Postgres) initialize(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS tracking_events (
			id          TEXT PRIMARY KEY,
			event_type  TEXT NOT NULL,
			site_id     TEXT NOT NULL,
			visitor_id  TEXT NOT NULL,
			user_id     TEXT NULL,
			user_email  TEXT NULL,
			new_session BOOLEAN NOT NULL DEFAULT FALSE,
			anonymized  BOOLEAN NOT NULL DEFAULT FALSE,
			params      JSONB NULL,
			ts          TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS tracking_events_visitor_idx ON tracking_events (visitor_id, ts);`

	_, err := p.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create tracking_events table: %w", err)
	}

	return nil
}

func (p *Postgres) Write(ctx context.Context, events []Event) error {
	var err error

	if len(events) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "write-events",
		trace.WithAttributes(attribute.Int("event-count", len(events))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}

	sql := `INSERT INTO tracking_events (id, event_type, site_id, visitor_id, user_id, user_email, new_session, anonymized, params, ts)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING;`

	for _, e := range events {
		var params []byte
		params, err = json.Marshal(e.Params)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to marshal params of event %s: %w", e.ID, err)
		}

		_, err = tx.Exec(ctx, sql, e.ID, e.Type, e.SiteID, e.VisitorID, e.UserID, e.UserEmail, e.NewSession, e.Anonymized, params, e.Timestamp)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	logging.GetFromContext(ctx).Debug("wrote tracking events", "count", len(events))

	return nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
