package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID  uuid.UUID  `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	PlayerID  string     `json:"player_id" db:"player_id"`   // Identifier of the wallet's owner
	Currency  CurrencyID `json:"currency" db:"currency"`     // Currency id (e.g., Silver, Gold)
	Balance   int64      `json:"balance" db:"balance"`       // Current balance in units of Currency
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}

// Balances maps each currency to the amount a player holds.
type Balances map[CurrencyID]int64
