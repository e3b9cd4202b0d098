package persistence

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// EnsureSchema applies the embedded SQL migrations in filename order.
// Every statement is idempotent, so running at each startup is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		logger.Info("applying migration", zap.String("file", name))
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(filenames)))
	return nil
}

// Schema captures optional capabilities of the connected database. It is
// probed once at startup; read paths branch on the cached result instead
// of catching undefined-column errors per request.
type Schema struct {
	// HasSentimentColumns is false on deployments whose chat_messages
	// table predates the sentiment migration. Reads then degrade to
	// sentiment-less messages rather than failing.
	HasSentimentColumns bool
}

var sentimentColumns = []string{
	"sentiment_score",
	"sentiment_comparative",
	"sentiment_label",
	"sentiment_magnitude",
}

// DetectSchema probes the database for optional columns.
func DetectSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) (Schema, error) {
	if pool == nil {
		return Schema{}, nil
	}

	const query = `
        SELECT COUNT(*)
        FROM information_schema.columns
        WHERE table_name = 'chat_messages'
          AND column_name = ANY($1)`

	var count int
	if err := pool.QueryRow(ctx, query, sentimentColumns).Scan(&count); err != nil {
		return Schema{}, fmt.Errorf("detect schema: %w", err)
	}

	schema := Schema{HasSentimentColumns: count == len(sentimentColumns)}
	if !schema.HasSentimentColumns {
		logger.Warn("chat_messages is missing sentiment columns; messages will be stored without sentiment")
	}
	return schema, nil
}
