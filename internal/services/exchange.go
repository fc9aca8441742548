package services

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
	"github.com/sbilibin2017/gw-currency-exchange/internal/policy"
	"github.com/sbilibin2017/gw-currency-exchange/internal/rates"
)

// WalletReader reads player balances.
type WalletReader interface {
	GetBalances(ctx context.Context, playerID string) (models.Balances, error) // Returns balances by currency
}

// WalletTransferer applies a debit and a credit to one player's wallet as a single transaction.
// It returns models.ErrInsufficientFunds when a debited balance would drop below zero.
type WalletTransferer interface {
	Transfer(ctx context.Context, playerID string, debit, credit models.Bundle) error
}

// ExchangeConfigReader returns the current exchange policy snapshot.
type ExchangeConfigReader interface {
	GetCurrent(ctx context.Context) (models.ExchangeConfig, error)
}

// ExchangeConfigCacheReader caches the current exchange policy snapshot.
type ExchangeConfigCacheReader interface {
	GetExchangeConfig(ctx context.Context) (models.ExchangeConfig, error)
	SetExchangeConfig(ctx context.Context, cfg models.ExchangeConfig) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// errorCodes lists every wire code in classification order.
var errorCodes = []error{
	models.ErrInvalidArgs,
	models.ErrUnsupportedCurrency,
	models.ErrMinUnitNotMet,
	models.ErrPerTxLimitExceeded,
	models.ErrInsufficientFunds,
	models.ErrWalletUnavailable,
	models.ErrConfigUnavailable,
}

// ErrorCode returns the wire code carried by err, or INTERNAL_ERROR.
func ErrorCode(err error) string {
	for _, code := range errorCodes {
		if errors.Is(err, code) {
			return code.Error()
		}
	}
	return "INTERNAL_ERROR"
}

// ExchangeService converts one currency into another for a player.
type ExchangeService struct {
	walletReader WalletReader
	transferer   WalletTransferer
	configReader ExchangeConfigReader
	configCache  ExchangeConfigCacheReader
	kafkaWriter  KafkaWriter
	afterCommit  func(ctx context.Context, fn func()) bool
}

// NewExchangeService creates a new ExchangeService. configCache and kafkaWriter may be nil.
// afterCommit defers the exchange event until the request transaction commits; it reports
// false when ctx has no such transaction, and the event is then published right away.
// A nil afterCommit always publishes right away.
func NewExchangeService(
	walletReader WalletReader,
	transferer WalletTransferer,
	configReader ExchangeConfigReader,
	configCache ExchangeConfigCacheReader,
	kafkaWriter KafkaWriter,
	afterCommit func(ctx context.Context, fn func()) bool,
) *ExchangeService {
	return &ExchangeService{
		walletReader: walletReader,
		transferer:   transferer,
		configReader: configReader,
		configCache:  configCache,
		kafkaWriter:  kafkaWriter,
		afterCommit:  afterCommit,
	}
}

// Config returns the current exchange config, preferring the cached snapshot.
func (s *ExchangeService) Config(ctx context.Context) (models.ExchangeConfig, error) {
	if s.configCache != nil {
		cfg, err := s.configCache.GetExchangeConfig(ctx)
		if err == nil {
			return cfg, nil
		}
		logger.Log.Debugw("exchange config cache miss", "error", err)
	}

	cfg, err := s.configReader.GetCurrent(ctx)
	if errors.Is(err, models.ErrExchangeConfigNotFound) {
		// nothing published yet: no fees, minimums or limits
		logger.Log.Warnw("no exchange config published, using defaults")
		return models.ExchangeConfig{}, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load exchange config", "error", err)
		return models.ExchangeConfig{}, fmt.Errorf("%w: %v", models.ErrConfigUnavailable, err)
	}

	if s.configCache != nil {
		if err := s.configCache.SetExchangeConfig(ctx, cfg); err != nil {
			logger.Log.Errorw("failed to cache exchange config", "version", cfg.Version(), "error", err)
		}
	}
	return cfg, nil
}

// Exchange validates the request against the current config and moves the funds.
func (s *ExchangeService) Exchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeResult, error) {
	log := logger.ForPlayer(ctx, req.PlayerID)

	if err := Validate(req); err != nil {
		log.Warnw("exchange rejected", "stage", "validate", "from", req.From.CurrencyID, "to", req.To.CurrencyID, "error", err)
		return models.ExchangeResult{}, err
	}

	cfg, err := s.Config(ctx)
	if err != nil {
		return models.ExchangeResult{}, err
	}

	return s.ExchangeWithConfig(ctx, cfg, req)
}

// ExchangeWithConfig runs the exchange against an explicit config snapshot.
func (s *ExchangeService) ExchangeWithConfig(ctx context.Context, cfg models.ExchangeConfig, req models.ExchangeRequest) (models.ExchangeResult, error) {
	log := logger.ForPlayer(ctx, req.PlayerID).With("from", req.From.CurrencyID, "to", req.To.CurrencyID, "config_version", cfg.Version())

	result, err := Quote(cfg, req)
	if err != nil {
		log.Warnw("exchange rejected", "stage", "policy", "amount", req.From.Amount, "error", err)
		return models.ExchangeResult{}, err
	}

	balances, err := s.walletReader.GetBalances(ctx, req.PlayerID)
	if err != nil {
		log.Errorw("failed to read balances", "error", err)
		return models.ExchangeResult{}, fmt.Errorf("%w: %v", models.ErrWalletUnavailable, err)
	}
	if balance := balances[req.From.CurrencyID]; balance < result.Debited {
		log.Warnw("exchange rejected", "stage", "balance", "balance", balance, "debit", result.Debited)
		return models.ExchangeResult{}, fmt.Errorf("%w: balance %d is below total debit %d", models.ErrInsufficientFunds, balance, result.Debited)
	}

	debit := models.Bundle{{CurrencyID: req.From.CurrencyID, Amount: result.Debited}}
	var credit models.Bundle
	if result.Credited > 0 {
		credit = models.Bundle{{CurrencyID: req.To.CurrencyID, Amount: result.Credited}}
	}

	if err := s.transferer.Transfer(ctx, req.PlayerID, debit, credit); err != nil {
		if errors.Is(err, models.ErrInsufficientFunds) {
			log.Warnw("exchange rejected", "stage", "transfer", "error", err)
			return models.ExchangeResult{}, err
		}
		log.Errorw("failed to transfer currencies", "error", err)
		return models.ExchangeResult{}, fmt.Errorf("%w: %v", models.ErrWalletUnavailable, err)
	}

	log.Infow("exchange completed", "credited", result.Credited, "debited", result.Debited, "fee", result.FeeApplied)

	event := models.ExchangeEvent{
		ExchangeID:    uuid.NewString(),
		RequestID:     logger.RequestIDFromContext(ctx),
		PlayerID:      req.PlayerID,
		From:          req.From.CurrencyID,
		To:            req.To.CurrencyID,
		Credited:      result.Credited,
		Debited:       result.Debited,
		Fee:           result.FeeApplied,
		ConfigVersion: cfg.Version(),
		Timestamp:     time.Now().Unix(),
	}
	publish := func() { s.publishExchange(context.WithoutCancel(ctx), event) }
	if s.afterCommit == nil || !s.afterCommit(ctx, publish) {
		publish()
	}

	return result, nil
}

// Validate checks the request shape. Unknown currencies are reported before any other problem.
func Validate(req models.ExchangeRequest) error {
	for _, id := range []models.CurrencyID{req.From.CurrencyID, req.To.CurrencyID} {
		if id != "" && !id.Valid() {
			return fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, id)
		}
	}

	switch {
	case req.PlayerID == "":
		return fmt.Errorf("%w: playerId is required", models.ErrInvalidArgs)
	case req.From.CurrencyID == "":
		return fmt.Errorf("%w: from.currencyId is required", models.ErrInvalidArgs)
	case req.To.CurrencyID == "":
		return fmt.Errorf("%w: to.currencyId is required", models.ErrInvalidArgs)
	case req.From.Amount <= 0:
		return fmt.Errorf("%w: from.amount must be a positive integer", models.ErrInvalidArgs)
	case req.From.CurrencyID == req.To.CurrencyID:
		return fmt.Errorf("%w: from and to currencies must differ", models.ErrInvalidArgs)
	}
	return nil
}

// Quote evaluates every policy rule for req without touching a wallet
// and returns the amounts the exchange would move.
func Quote(cfg models.ExchangeConfig, req models.ExchangeRequest) (models.ExchangeResult, error) {
	if err := Validate(req); err != nil {
		return models.ExchangeResult{}, err
	}
	from, to, amount := req.From.CurrencyID, req.To.CurrencyID, req.From.Amount

	if !policy.CheckMinUnit(cfg, from, to, amount) {
		min, _ := cfg.MinUnit(req.Pair())
		return models.ExchangeResult{}, fmt.Errorf("%w: amount %d is below minimum %d for %s", models.ErrMinUnitNotMet, amount, min, req.Pair())
	}

	debitCopper, err := rates.ToBaseUnits(models.Bundle{{CurrencyID: from, Amount: amount}})
	if err != nil {
		return models.ExchangeResult{}, err
	}
	dir, err := policy.DirectionOf(from, to)
	if err != nil {
		return models.ExchangeResult{}, err
	}
	if !policy.CheckPerTxLimit(cfg, dir, debitCopper) {
		return models.ExchangeResult{}, fmt.Errorf("%w: %s Copper exceeds the %s limit %s", models.ErrPerTxLimitExceeded, debitCopper, dir, policy.Limit(cfg, dir))
	}

	credited, err := rates.FromBaseUnits(to, debitCopper)
	if err != nil {
		return models.ExchangeResult{}, err
	}
	if credited.GreaterThan(maxInt64) {
		return models.ExchangeResult{}, fmt.Errorf("%w: credited amount %s is out of range", models.ErrInvalidArgs, credited)
	}

	fee := policy.CalcFee(cfg, from, to, amount)
	if amount > math.MaxInt64-fee {
		return models.ExchangeResult{}, fmt.Errorf("%w: total debit is out of range", models.ErrInvalidArgs)
	}

	rateUsed, err := rates.Describe(from, to)
	if err != nil {
		return models.ExchangeResult{}, err
	}

	return models.ExchangeResult{
		Credited:   credited.IntPart(),
		Debited:    amount + fee,
		FeeApplied: fee,
		RateUsed:   rateUsed,
	}, nil
}

// publishExchange publishes a committed exchange to Kafka.
func (s *ExchangeService) publishExchange(ctx context.Context, event models.ExchangeEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "exchange_id", event.ExchangeID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal exchange event for Kafka", "exchange_id", event.ExchangeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PlayerID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish exchange event to Kafka", "exchange_id", event.ExchangeID, "error", err)
	} else {
		logger.Log.Infow("Exchange event published to Kafka", "exchange_id", event.ExchangeID, "request_id", event.RequestID, "player_id", event.PlayerID)
	}
}
