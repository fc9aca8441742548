// Package policy evaluates exchange config rules: minimum units,
// per-transaction caps and fees.
package policy

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
	"github.com/sbilibin2017/gw-currency-exchange/internal/rates"
)

// Direction tells whether an exchange moves to a more or a less valuable currency.
type Direction int

const (
	Down Direction = iota
	Up
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// DirectionOf returns Up when to is worth more per unit than from.
func DirectionOf(from, to models.CurrencyID) (Direction, error) {
	fromRate, err := rates.Rate(from)
	if err != nil {
		return Down, err
	}
	toRate, err := rates.Rate(to)
	if err != nil {
		return Down, err
	}
	if fromRate.LessThan(toRate) {
		return Up, nil
	}
	return Down, nil
}

// CheckMinUnit reports whether amount meets the configured minimum for the pair.
// Pairs without a minimum always pass.
func CheckMinUnit(cfg models.ExchangeConfig, from, to models.CurrencyID, amount int64) bool {
	min, ok := cfg.MinUnit(models.NewPair(from, to))
	if !ok {
		return true
	}
	return amount >= min
}

// Limit returns the configured Copper cap for the direction; zero means unconstrained.
func Limit(cfg models.ExchangeConfig, dir Direction) decimal.Decimal {
	if dir == Up {
		return cfg.Limits().PerTxUp
	}
	return cfg.Limits().PerTxDown
}

// CheckPerTxLimit reports whether debitCopper stays within the cap for dir.
func CheckPerTxLimit(cfg models.ExchangeConfig, dir Direction, debitCopper decimal.Decimal) bool {
	limit := Limit(cfg, dir)
	if limit.IsZero() {
		return true
	}
	return debitCopper.LessThanOrEqual(limit)
}

// CalcFee returns ceil(principal * feeRate) in units of the source currency.
func CalcFee(cfg models.ExchangeConfig, from, to models.CurrencyID, principal int64) int64 {
	rate, ok := cfg.FeeRate(models.NewPair(from, to))
	if !ok || rate.IsZero() || principal <= 0 {
		return 0
	}
	return decimal.NewFromInt(principal).Mul(rate).Ceil().IntPart()
}
