package models

// ExchangeFrom is the source side of an exchange request
// swagger:model ExchangeFrom
type ExchangeFrom struct {
	// Source currency
	// required: true
	// example: Silver
	CurrencyID CurrencyID `json:"currencyId"`

	// Units of the source currency to spend before fee
	// required: true
	// example: 10000
	Amount int64 `json:"amount"`
}

// ExchangeTo is the target side of an exchange request
// swagger:model ExchangeTo
type ExchangeTo struct {
	// Target currency
	// required: true
	// example: Electrum
	CurrencyID CurrencyID `json:"currencyId"`
}

// ExchangeRequest represents the JSON body for a currency exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Player performing the exchange
	// required: true
	// example: player-42
	PlayerID string `json:"playerId"`

	From ExchangeFrom `json:"from"`
	To   ExchangeTo   `json:"to"`
}

// Pair returns the currency direction of the request.
func (r ExchangeRequest) Pair() Pair {
	return NewPair(r.From.CurrencyID, r.To.CurrencyID)
}

// ExchangeResult represents a successful currency exchange
// swagger:model ExchangeResult
type ExchangeResult struct {
	// Amount credited in the target currency
	// example: 1000
	Credited int64 `json:"credited"`

	// Total amount debited in the source currency, principal plus fee
	// example: 10000
	Debited int64 `json:"debited"`

	// Fee portion of the debit
	// example: 0
	FeeApplied int64 `json:"feeApplied"`

	// Human readable rate
	// example: 10 Silver = 1 Electrum
	RateUsed string `json:"rateUsed"`
}

// ExchangeErrorResponse represents a rejected exchange
// swagger:model ExchangeErrorResponse
type ExchangeErrorResponse struct {
	// Error code
	// example: INSUFFICIENT_FUNDS
	Error string `json:"error"`

	// Details
	// example: balance 10 is below total debit 11
	Message string `json:"message,omitempty"`
}

// ExchangeEvent is published after an exchange has been committed.
type ExchangeEvent struct {
	ExchangeID    string     `json:"exchange_id"`
	RequestID     string     `json:"request_id,omitempty"`
	PlayerID      string     `json:"player_id"`
	From          CurrencyID `json:"from"`
	To            CurrencyID `json:"to"`
	Credited      int64      `json:"credited"`
	Debited       int64      `json:"debited"`
	Fee           int64      `json:"fee"`
	ConfigVersion string     `json:"config_version"`
	Timestamp     int64      `json:"timestamp"`
}
