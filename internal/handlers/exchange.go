package handlers

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// Exchanger performs a single currency exchange.
type Exchanger interface {
	Exchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeResult, error)
}

// NewExchangeHandler handles currency exchange requests.
// @Summary Exchange currency
// @Description Converts an amount of one currency into another for the authenticated player. The fee is added on top of the source amount.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.ExchangeRequest true "Exchange Request"
// @Success 200 {object} models.ExchangeResult "Exchange successful"
// @Failure 400 {object} models.ExchangeErrorResponse "Rejected by validation, policy or balance"
// @Failure 401 {object} models.ExchangeErrorResponse "Unauthorized"
// @Failure 503 {object} models.ExchangeErrorResponse "Wallet or config unavailable"
// @Router /exchange [post]
// @Security BearerAuth
func NewExchangeHandler(
	exchanger Exchanger,
	playerGetter func(ctx context.Context) (string, bool),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		playerID, ok := playerGetter(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.ExchangeErrorResponse{Error: "UNAUTHORIZED"})
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxExchangeBody))
		if err != nil {
			writeError(w, fmt.Errorf("%w: unreadable request body", models.ErrInvalidArgs))
			return
		}

		// an unknown currency wins over every other problem in the body
		if err := checkCurrencies(body); err != nil {
			writeError(w, err)
			return
		}

		var req models.ExchangeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Log.Debugw("failed to decode exchange request", "error", err)
			writeError(w, fmt.Errorf("%w: malformed request body", models.ErrInvalidArgs))
			return
		}

		// the body may omit playerId, but must not name somebody else
		if req.PlayerID == "" {
			req.PlayerID = playerID
		}
		if req.PlayerID != playerID {
			writeError(w, fmt.Errorf("%w: playerId does not match the authenticated player", models.ErrInvalidArgs))
			return
		}

		result, err := exchanger.Exchange(ctx, req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

const maxExchangeBody = 1 << 16

// currencyFields picks the currency ids out of an exchange body and ignores the rest.
type currencyFields struct {
	From struct {
		CurrencyID models.CurrencyID `json:"currencyId"`
	} `json:"from"`
	To struct {
		CurrencyID models.CurrencyID `json:"currencyId"`
	} `json:"to"`
}

// checkCurrencies reports an unsupported currency named anywhere in body.
// Bodies that are not JSON at all are left to the full decode.
func checkCurrencies(body []byte) error {
	var fields currencyFields
	if err := json.Unmarshal(body, &fields); err != nil {
		// a mistyped field still leaves the readable ids in place
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil
		}
	}
	for _, id := range []models.CurrencyID{fields.From.CurrencyID, fields.To.CurrencyID} {
		if id != "" && !id.Valid() {
			return fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, id)
		}
	}
	return nil
}
