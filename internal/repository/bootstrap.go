package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/aferrand/decisions-collector/gen/ent"
	"github.com/aferrand/decisions-collector/internal/common"
)

// DatabaseResult bundles the opened client with its cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens the decision database. With inmem set it uses an
// in-memory SQLite database (local runs, smoke tests) and creates the schema;
// otherwise it connects to Postgres via pgx using cfg.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:collector?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, common.WrapError(err, "open in-memory sqlite")
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, common.WrapError(err, "create sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DatabaseResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DatabaseResult{
		Client: client,
		Cleanup: func() {
			Close(client, pool, logger)
		},
	}, nil
}
