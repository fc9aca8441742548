package handlers

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// BalanceReader defines the interface that the wallet store must implement.
type BalanceReader interface {
	GetBalances(ctx context.Context, playerID string) (models.Balances, error)
}

// BalanceResponse represents the wallets of a player
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Player the balances belong to
	// example: player-42
	PlayerID string `json:"playerId"`

	// Wallets ordered by rank; zero balances are included
	Balance models.Bundle `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching player balances.
// @Summary Get player balance
// @Description Returns the balance of every supported currency
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Player balance"
// @Failure 401 {object} models.ExchangeErrorResponse "Unauthorized"
// @Failure 503 {object} models.ExchangeErrorResponse "Wallet unavailable"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	reader BalanceReader,
	playerGetter func(ctx context.Context) (string, bool),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		playerID, ok := playerGetter(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.ExchangeErrorResponse{Error: "UNAUTHORIZED"})
			return
		}

		balances, err := reader.GetBalances(ctx, playerID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "player_id", playerID, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, models.ExchangeErrorResponse{Error: models.ErrWalletUnavailable.Error()})
			return
		}

		resp := BalanceResponse{PlayerID: playerID, Balance: make(models.Bundle, 0, len(models.Currencies))}
		for _, id := range models.Currencies {
			resp.Balance = append(resp.Balance, models.BundleItem{CurrencyID: id, Amount: balances[id]})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
