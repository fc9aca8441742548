// Package rates holds the fixed conversion table between every supported
// currency and Copper, the atomic base unit.
package rates

import (
	"fmt"
	"math/big"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// ErrUnsupportedCurrency is returned for identifiers outside the rate table.
var ErrUnsupportedCurrency = models.ErrUnsupportedCurrency

// copperRates is the value of one unit of each currency in Copper.
var copperRates = map[models.CurrencyID]decimal.Decimal{
	models.Copper:       decimal.NewFromInt(1),
	models.Silver:       decimal.New(1, 3),
	models.Electrum:     decimal.New(1, 4),
	models.Gold:         decimal.New(1, 7),
	models.Platinum:     decimal.New(1, 10),
	models.GoldBar:      decimal.New(1, 14),
	models.LegendaryBar: decimal.New(1, 17),
}

// Entry describes one row of the rate table.
type Entry struct {
	CurrencyID models.CurrencyID `json:"currencyId"`
	Rank       int               `json:"rank"`
	Copper     decimal.Decimal   `json:"copper"`
}

// Rate returns the Copper value of one unit of id.
func Rate(id models.CurrencyID) (decimal.Decimal, error) {
	rate, ok := copperRates[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, id)
	}
	return rate, nil
}

// Table returns the rate table ordered by rank.
func Table() []Entry {
	return lo.Map(models.Currencies, func(id models.CurrencyID, rank int) Entry {
		return Entry{CurrencyID: id, Rank: rank, Copper: copperRates[id]}
	})
}

// ToBaseUnits sums every bundle item converted to Copper.
func ToBaseUnits(bundle models.Bundle) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range bundle {
		rate, err := Rate(item.CurrencyID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(decimal.NewFromInt(item.Amount).Mul(rate))
	}
	return total, nil
}

// FromBaseUnits converts a Copper amount into whole units of target.
// The fractional remainder is truncated and not creditable.
func FromBaseUnits(target models.CurrencyID, base decimal.Decimal) (decimal.Decimal, error) {
	rate, err := Rate(target)
	if err != nil {
		return decimal.Zero, err
	}
	q, _ := base.QuoRem(rate, 0)
	return q, nil
}

// Describe renders the reduced ratio between two currencies, e.g. "10 Silver = 1 Electrum".
func Describe(from, to models.CurrencyID) (string, error) {
	fromRate, err := Rate(from)
	if err != nil {
		return "", err
	}
	toRate, err := Rate(to)
	if err != nil {
		return "", err
	}

	a, b := fromRate.BigInt(), toRate.BigInt()
	gcd := new(big.Int).GCD(nil, nil, a, b)
	// x units of from buy y units of to, where x*fromRate == y*toRate.
	x := new(big.Int).Quo(b, gcd)
	y := new(big.Int).Quo(a, gcd)
	return fmt.Sprintf("%s %s = %s %s", x, from, y, to), nil
}
