package models

import (
	"fmt"
	"strings"
)

// CurrencyID identifies one denomination of the fixed currency hierarchy.
type CurrencyID string

// Supported currency identifiers, ordered by value.
const (
	Copper       CurrencyID = "Copper"
	Silver       CurrencyID = "Silver"
	Electrum     CurrencyID = "Electrum"
	Gold         CurrencyID = "Gold"
	Platinum     CurrencyID = "Platinum"
	GoldBar      CurrencyID = "GoldBar"
	LegendaryBar CurrencyID = "LegendaryBar"
)

// Currencies lists every supported currency from the lowest to the highest rank.
var Currencies = []CurrencyID{Copper, Silver, Electrum, Gold, Platinum, GoldBar, LegendaryBar}

// shortCodes maps the abbreviations used in exchange config keys (e.g. "G_to_P").
var shortCodes = map[string]CurrencyID{
	"C":  Copper,
	"S":  Silver,
	"E":  Electrum,
	"G":  Gold,
	"P":  Platinum,
	"GB": GoldBar,
	"LB": LegendaryBar,
}

// String implements fmt.Stringer.
func (c CurrencyID) String() string {
	return string(c)
}

// Valid reports whether c belongs to the supported set.
func (c CurrencyID) Valid() bool {
	return c.Rank() >= 0
}

// Rank returns the position of c in the hierarchy, or -1 if c is unknown.
func (c CurrencyID) Rank() int {
	for i, id := range Currencies {
		if id == c {
			return i
		}
	}
	return -1
}

// ParseCurrencyID resolves a full identifier or a short code.
// The second result is false when s names no supported currency.
func ParseCurrencyID(s string) (CurrencyID, bool) {
	s = strings.TrimSpace(s)
	if id := CurrencyID(s); id.Valid() {
		return id, true
	}
	if id, ok := shortCodes[strings.ToUpper(s)]; ok {
		return id, true
	}
	return "", false
}

// Pair is an ordered (from, to) currency direction.
type Pair struct {
	From CurrencyID
	To   CurrencyID
}

// pairSeparator joins the two ids in serialized pair keys.
const pairSeparator = "_to_"

// NewPair builds a Pair.
func NewPair(from, to CurrencyID) Pair {
	return Pair{From: from, To: to}
}

// String returns the serialized key form "<from>_to_<to>".
func (p Pair) String() string {
	return string(p.From) + pairSeparator + string(p.To)
}

// ParsePair parses a "<from>_to_<to>" key. Both sides accept full ids or short codes.
func ParsePair(key string) (Pair, error) {
	from, to, ok := strings.Cut(key, pairSeparator)
	if !ok {
		return Pair{}, fmt.Errorf("malformed pair key %q", key)
	}
	fromID, ok := ParseCurrencyID(from)
	if !ok {
		return Pair{}, fmt.Errorf("pair key %q: unknown currency %q", key, from)
	}
	toID, ok := ParseCurrencyID(to)
	if !ok {
		return Pair{}, fmt.Errorf("pair key %q: unknown currency %q", key, to)
	}
	if fromID == toID {
		return Pair{}, fmt.Errorf("pair key %q: currencies must differ", key)
	}
	return Pair{From: fromID, To: toID}, nil
}

// BundleItem is an amount of a single currency.
type BundleItem struct {
	CurrencyID CurrencyID `json:"currencyId"`
	Amount     int64      `json:"amount"`
}

// Bundle is a multi-currency balance delta.
type Bundle []BundleItem
