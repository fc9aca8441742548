package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

var (
	subtractQuery = regexp.QuoteMeta("UPDATE wallets")
	grantQuery    = regexp.QuoteMeta("INSERT INTO wallets")
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func balanceRows(balance int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"balance"}).AddRow(balance)
}

func TestWalletWriterRepository_Transfer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Silver", int64(10_000)).WillReturnRows(balanceRows(0))
	mock.ExpectQuery(grantQuery).WithArgs(sqlmock.AnyArg(), "player-1", "Electrum", int64(1_000)).WillReturnRows(balanceRows(1_000))
	mock.ExpectCommit()

	err := repo.Transfer(context.Background(), "player-1",
		models.Bundle{{CurrencyID: models.Silver, Amount: 10_000}},
		models.Bundle{{CurrencyID: models.Electrum, Amount: 1_000}},
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_Transfer_InsufficientRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Gold", int64(5)).WillReturnRows(sqlmock.NewRows([]string{"balance"}))
	mock.ExpectRollback()

	err := repo.Transfer(context.Background(), "player-1",
		models.Bundle{{CurrencyID: models.Gold, Amount: 5}},
		models.Bundle{{CurrencyID: models.Silver, Amount: 50_000}},
	)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_Transfer_CreditFailureRollsBackDebit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Gold", int64(5)).WillReturnRows(balanceRows(0))
	mock.ExpectQuery(grantQuery).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Transfer(context.Background(), "player-1",
		models.Bundle{{CurrencyID: models.Gold, Amount: 5}},
		models.Bundle{{CurrencyID: models.Silver, Amount: 50_000}},
	)
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_UsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewWalletWriterRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	// no Begin/Commit from the repository itself
	mock.ExpectQuery(grantQuery).WithArgs(sqlmock.AnyArg(), "player-1", "Copper", int64(7)).WillReturnRows(balanceRows(7))

	err = repo.GrantCurrencies(context.Background(), "player-1", models.Bundle{{CurrencyID: models.Copper, Amount: 7}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_SubtractCurrencies_MergesBundle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Silver", int64(30)).WillReturnRows(balanceRows(70))
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Gold", int64(2)).WillReturnRows(balanceRows(0))
	mock.ExpectCommit()

	err := repo.SubtractCurrencies(context.Background(), "player-1", models.Bundle{
		{CurrencyID: models.Gold, Amount: 2},
		{CurrencyID: models.Silver, Amount: 10},
		{CurrencyID: models.Copper, Amount: 0},
		{CurrencyID: models.Silver, Amount: 20},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_RejectsBadBundle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := repo.GrantCurrencies(context.Background(), "player-1", models.Bundle{{CurrencyID: "Diamond", Amount: 1}})
	assert.ErrorIs(t, err, models.ErrUnsupportedCurrency)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err = repo.GrantCurrencies(context.Background(), "player-1", models.Bundle{{CurrencyID: models.Gold, Amount: -1}})
	assert.ErrorIs(t, err, models.ErrInvalidArgs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletReaderRepository_GetBalances(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletReaderRepository(db, nil)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_id, player_id, currency, balance")).
		WithArgs("player-1").
		WillReturnRows(sqlmock.NewRows([]string{"wallet_id", "player_id", "currency", "balance", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "player-1", "Silver", 20_000_000, now, now).
			AddRow(uuid.NewString(), "player-1", "Gold", 3, now, now))

	balances, err := repo.GetBalances(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, models.Balances{models.Silver: 20_000_000, models.Gold: 3}, balances)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_id, player_id")).WillReturnError(errors.New("db down"))
	_, err = repo.GetBalances(context.Background(), "player-1")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletReaderRepository_GetBalances_UsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	reader := NewWalletReaderRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	writer := NewWalletWriterRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_id, player_id")).
		WithArgs("player-1").
		WillReturnRows(sqlmock.NewRows([]string{"wallet_id", "player_id", "currency", "balance", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "player-1", "Gold", 3, now, now))
	mock.ExpectQuery(subtractQuery).WithArgs("player-1", "Gold", int64(3)).WillReturnRows(balanceRows(0))
	mock.ExpectCommit()

	ctx := context.Background()
	balances, err := reader.GetBalances(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), balances[models.Gold])

	require.NoError(t, writer.SubtractCurrencies(ctx, "player-1", models.Bundle{{CurrencyID: models.Gold, Amount: 3}}))
	require.NoError(t, tx.Commit())

	// read and debit ran on one transaction: a single Begin and a single Commit
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeBundle(t *testing.T) {
	merged, err := mergeBundle(models.Bundle{
		{CurrencyID: models.Platinum, Amount: 1},
		{CurrencyID: models.Copper, Amount: 5},
		{CurrencyID: models.Platinum, Amount: 2},
		{CurrencyID: models.Silver, Amount: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Bundle{
		{CurrencyID: models.Copper, Amount: 5},
		{CurrencyID: models.Platinum, Amount: 3},
	}, merged)

	merged, err = mergeBundle(nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}
