package models

import "errors"

// Exchange rejection kinds. Each message is the wire code returned to clients.
var (
	ErrInvalidArgs         = errors.New("INVALID_ARGS")
	ErrUnsupportedCurrency = errors.New("UNSUPPORTED_CURRENCY")
	ErrMinUnitNotMet       = errors.New("MIN_UNIT_NOT_MET")
	ErrPerTxLimitExceeded  = errors.New("PER_TX_LIMIT_EXCEEDED")
	ErrInsufficientFunds   = errors.New("INSUFFICIENT_FUNDS")
	ErrWalletUnavailable   = errors.New("WALLET_UNAVAILABLE")
	ErrConfigUnavailable   = errors.New("CONFIG_UNAVAILABLE")
)

// ErrExchangeConfigNotFound means no config version has been published yet.
var ErrExchangeConfigNotFound = errors.New("exchange config not found")
