package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// ErrExchangeConfigNotFound is returned when no config version has been stored yet.
var ErrExchangeConfigNotFound = models.ErrExchangeConfigNotFound

// ExchangeConfigRepository stores versioned exchange config documents in PostgreSQL.
type ExchangeConfigRepository struct {
	db *sqlx.DB
}

func NewExchangeConfigRepository(db *sqlx.DB) *ExchangeConfigRepository {
	return &ExchangeConfigRepository{db: db}
}

// GetCurrent returns the most recently stored config.
func (r *ExchangeConfigRepository) GetCurrent(ctx context.Context) (models.ExchangeConfig, error) {
	const query = `
		SELECT version, document, created_at
		FROM exchange_configs
		ORDER BY created_at DESC, version DESC
		LIMIT 1
	`

	var row models.ExchangeConfigDB
	err := r.db.GetContext(ctx, &row, query)

	// Log query, args, result, error
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", row.Version,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ExchangeConfig{}, ErrExchangeConfigNotFound
	}
	if err != nil {
		return models.ExchangeConfig{}, err
	}

	cfg, err := models.ParseExchangeConfig(row.Document)
	if err != nil {
		return models.ExchangeConfig{}, fmt.Errorf("stored config %s: %w", row.Version, err)
	}
	if cfg.Version() == "" {
		cfg = cfg.WithVersion(row.Version)
	}
	return cfg, nil
}

// Save stores cfg as a new version. The version must not exist yet.
func (r *ExchangeConfigRepository) Save(ctx context.Context, cfg models.ExchangeConfig) error {
	query := `
		INSERT INTO exchange_configs (version, document, created_at)
		VALUES ($1, $2, NOW())
	`

	if cfg.Version() == "" {
		return fmt.Errorf("%w: version is required", models.ErrInvalidExchangeConfig)
	}

	doc, err := cfg.MarshalJSON()
	if err != nil {
		return err
	}

	args := []any{cfg.Version(), doc}
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cfg.Version()},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
