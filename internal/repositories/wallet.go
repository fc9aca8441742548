package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// WalletWriterRepository handles wallet write operations
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewWalletWriterRepository creates a repository. txGetter may return a request scoped
// transaction; when it is nil or returns nil each call runs in its own transaction.
func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

// Transfer debits and credits one player's wallet inside a single transaction.
func (r *WalletWriterRepository) Transfer(ctx context.Context, playerID string, debit, credit models.Bundle) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := subtract(ctx, tx, playerID, debit); err != nil {
			return err
		}
		return grant(ctx, tx, playerID, credit)
	})
}

// SubtractCurrencies atomically debits every currency of the bundle.
// It fails with models.ErrInsufficientFunds when any balance is too low.
func (r *WalletWriterRepository) SubtractCurrencies(ctx context.Context, playerID string, bundle models.Bundle) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		return subtract(ctx, tx, playerID, bundle)
	})
}

// GrantCurrencies atomically credits every currency of the bundle.
func (r *WalletWriterRepository) GrantCurrencies(ctx context.Context, playerID string, bundle models.Bundle) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		return grant(ctx, tx, playerID, bundle)
	})
}

// inTx runs fn in the request transaction if there is one, otherwise in a new one.
func (r *WalletWriterRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Log.Errorw("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// subtract performs a guarded decrement per currency; the WHERE clause keeps balances non-negative
// under concurrent exchanges.
func subtract(ctx context.Context, tx *sqlx.Tx, playerID string, bundle models.Bundle) error {
	query := `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE player_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	items, err := mergeBundle(bundle)
	if err != nil {
		return err
	}

	for _, item := range items {
		var balance int64
		err := sqlx.GetContext(ctx, tx, &balance, query, playerID, item.CurrencyID, item.Amount)

		// Log query, args, result, error
		logger.Log.Infow("query executed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{playerID, item.CurrencyID, item.Amount},
			"result", balance,
			"error", err,
		)

		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s balance is below %d", models.ErrInsufficientFunds, item.CurrencyID, item.Amount)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// grant performs an UPSERT per currency: creates the wallet row if missing, otherwise increases it.
func grant(ctx context.Context, tx *sqlx.Tx, playerID string, bundle models.Bundle) error {
	query := `
		INSERT INTO wallets (wallet_id, player_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (player_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	items, err := mergeBundle(bundle)
	if err != nil {
		return err
	}

	for _, item := range items {
		var balance int64
		err := sqlx.GetContext(ctx, tx, &balance, query, uuid.New(), playerID, item.CurrencyID, item.Amount)

		// Log query, args, result, error
		logger.Log.Infow("query executed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{playerID, item.CurrencyID, item.Amount},
			"result", balance,
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}

// mergeBundle sums duplicate currencies, drops zero amounts and orders rows by rank
// so concurrent transactions lock wallet rows in the same order.
func mergeBundle(bundle models.Bundle) (models.Bundle, error) {
	for _, item := range bundle {
		if !item.CurrencyID.Valid() {
			return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, item.CurrencyID)
		}
		if item.Amount < 0 {
			return nil, fmt.Errorf("%w: negative amount for %s", models.ErrInvalidArgs, item.CurrencyID)
		}
	}

	grouped := lo.GroupBy(bundle, func(item models.BundleItem) models.CurrencyID {
		return item.CurrencyID
	})
	merged := lo.FilterMap(lo.Entries(grouped), func(e lo.Entry[models.CurrencyID, models.Bundle], _ int) (models.BundleItem, bool) {
		amount := lo.SumBy(e.Value, func(item models.BundleItem) int64 { return item.Amount })
		return models.BundleItem{CurrencyID: e.Key, Amount: amount}, amount > 0
	})
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CurrencyID.Rank() < merged[j].CurrencyID.Rank()
	})
	return merged, nil
}

// WalletReaderRepository handles wallet read operations
type WalletReaderRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewWalletReaderRepository creates a reader. When txGetter returns a request scoped
// transaction, balances are read through it so they share a snapshot with the transfer.
func NewWalletReaderRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReaderRepository {
	return &WalletReaderRepository{db: db, txGetter: txGetter}
}

func (r *WalletReaderRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetBalances retrieves all wallets of a player as a map[currency]balance
func (r *WalletReaderRepository) GetBalances(ctx context.Context, playerID string) (models.Balances, error) {
	const query = `
		SELECT wallet_id, player_id, currency, balance, created_at, updated_at
		FROM wallets
		WHERE player_id = $1
	`

	var wallets []models.WalletDB
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &wallets, query, playerID)

	// Convert to map
	balances := make(models.Balances, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	// Log query, args, result, error
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID},
		"result", balances,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return balances, nil
}
