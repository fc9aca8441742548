package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ErrInvalidExchangeConfig is returned when an exchange config document fails validation.
var ErrInvalidExchangeConfig = errors.New("invalid exchange config")

// Limits holds the direction dependent transaction caps.
// PerTxUp and PerTxDown are Copper values; zero means unconstrained.
type Limits struct {
	PerTxUp          decimal.Decimal `json:"perTxUp"`
	PerTxDown        decimal.Decimal `json:"perTxDown"`
	DailyUpCount     int64           `json:"dailyUpCount"`
	DailyDownCount   int64           `json:"dailyDownCount"`
	DailyBundleCount int64           `json:"dailyBundleCount"`
}

// ExchangeConfig is a read-only snapshot of the exchange policy.
// Fee rates and minimum units are keyed by currency pair; a missing pair means no restriction.
type ExchangeConfig struct {
	version  string
	feeRates map[Pair]decimal.Decimal
	minUnits map[Pair]int64
	limits   Limits
}

// exchangeConfigDocument is the serialized form of ExchangeConfig.
type exchangeConfigDocument struct {
	Version string                     `json:"version"`
	FeeRate map[string]decimal.Decimal `json:"feeRate"`
	MinUnit map[string]int64           `json:"minUnit"`
	Limits  Limits                     `json:"limits"`
}

// NewExchangeConfig builds a validated snapshot from already parsed values.
func NewExchangeConfig(version string, feeRates map[Pair]decimal.Decimal, minUnits map[Pair]int64, limits Limits) (ExchangeConfig, error) {
	cfg := ExchangeConfig{
		version:  version,
		feeRates: make(map[Pair]decimal.Decimal, len(feeRates)),
		minUnits: make(map[Pair]int64, len(minUnits)),
		limits:   limits,
	}
	for p, rate := range feeRates {
		if err := validatePair(p); err != nil {
			return ExchangeConfig{}, err
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return ExchangeConfig{}, fmt.Errorf("%w: fee rate for %s must be in [0,1), got %s", ErrInvalidExchangeConfig, p, rate)
		}
		cfg.feeRates[p] = rate
	}
	for p, min := range minUnits {
		if err := validatePair(p); err != nil {
			return ExchangeConfig{}, err
		}
		if min < 0 {
			return ExchangeConfig{}, fmt.Errorf("%w: min unit for %s must not be negative", ErrInvalidExchangeConfig, p)
		}
		cfg.minUnits[p] = min
	}
	if limits.PerTxUp.IsNegative() || limits.PerTxDown.IsNegative() {
		return ExchangeConfig{}, fmt.Errorf("%w: per transaction limits must not be negative", ErrInvalidExchangeConfig)
	}
	if limits.DailyUpCount < 0 || limits.DailyDownCount < 0 || limits.DailyBundleCount < 0 {
		return ExchangeConfig{}, fmt.Errorf("%w: daily counters must not be negative", ErrInvalidExchangeConfig)
	}
	return cfg, nil
}

// ParseExchangeConfig decodes and validates a JSON config document.
func ParseExchangeConfig(data []byte) (ExchangeConfig, error) {
	var cfg ExchangeConfig
	if err := cfg.UnmarshalJSON(data); err != nil {
		return ExchangeConfig{}, err
	}
	return cfg, nil
}

func validatePair(p Pair) error {
	if !p.From.Valid() || !p.To.Valid() {
		return fmt.Errorf("%w: unsupported currency in pair %s", ErrInvalidExchangeConfig, p)
	}
	if p.From == p.To {
		return fmt.Errorf("%w: pair %s has identical currencies", ErrInvalidExchangeConfig, p)
	}
	return nil
}

// Version returns the snapshot version label.
func (c ExchangeConfig) Version() string {
	return c.version
}

// FeeRate returns the fee fraction configured for p.
func (c ExchangeConfig) FeeRate(p Pair) (decimal.Decimal, bool) {
	rate, ok := c.feeRates[p]
	return rate, ok
}

// MinUnit returns the minimum source amount configured for p.
func (c ExchangeConfig) MinUnit(p Pair) (int64, bool) {
	min, ok := c.minUnits[p]
	return min, ok
}

// Limits returns the transaction caps.
func (c ExchangeConfig) Limits() Limits {
	return c.limits
}

// Pairs returns every pair that carries a fee or a minimum, sorted by key.
func (c ExchangeConfig) Pairs() []Pair {
	pairs := lo.Uniq(append(lo.Keys(c.feeRates), lo.Keys(c.minUnits)...))
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].String() < pairs[j].String()
	})
	return pairs
}

// MarshalJSON encodes the snapshot using "<from>_to_<to>" keys.
func (c ExchangeConfig) MarshalJSON() ([]byte, error) {
	doc := exchangeConfigDocument{
		Version: c.version,
		FeeRate: lo.MapKeys(c.feeRates, func(_ decimal.Decimal, p Pair) string { return p.String() }),
		MinUnit: lo.MapKeys(c.minUnits, func(_ int64, p Pair) string { return p.String() }),
		Limits:  c.limits,
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes and validates a config document.
func (c *ExchangeConfig) UnmarshalJSON(data []byte) error {
	var doc exchangeConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExchangeConfig, err)
	}

	feeRates := make(map[Pair]decimal.Decimal, len(doc.FeeRate))
	for key, rate := range doc.FeeRate {
		p, err := ParsePair(key)
		if err != nil {
			return fmt.Errorf("%w: feeRate: %v", ErrInvalidExchangeConfig, err)
		}
		if _, dup := feeRates[p]; dup {
			return fmt.Errorf("%w: feeRate: duplicate pair %s", ErrInvalidExchangeConfig, p)
		}
		feeRates[p] = rate
	}

	minUnits := make(map[Pair]int64, len(doc.MinUnit))
	for key, min := range doc.MinUnit {
		p, err := ParsePair(key)
		if err != nil {
			return fmt.Errorf("%w: minUnit: %v", ErrInvalidExchangeConfig, err)
		}
		if _, dup := minUnits[p]; dup {
			return fmt.Errorf("%w: minUnit: duplicate pair %s", ErrInvalidExchangeConfig, p)
		}
		minUnits[p] = min
	}

	cfg, err := NewExchangeConfig(doc.Version, feeRates, minUnits, doc.Limits)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// ExchangeConfigDB represents a stored config version
type ExchangeConfigDB struct {
	Version   string    `json:"version" db:"version"`
	Document  []byte    `json:"document" db:"document"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WithVersion returns a copy of c labelled with version.
func (c ExchangeConfig) WithVersion(version string) ExchangeConfig {
	c.version = version
	return c
}
