package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
	"github.com/sbilibin2017/gw-currency-exchange/internal/services"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidArgs),
		errors.Is(err, models.ErrUnsupportedCurrency),
		errors.Is(err, models.ErrMinUnitNotMet),
		errors.Is(err, models.ErrPerTxLimitExceeded),
		errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrWalletUnavailable),
		errors.Is(err, models.ErrConfigUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as {"error": CODE, "message": ...}.
// Internal errors never leak their message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := models.ExchangeErrorResponse{Error: services.ErrorCode(err)}
	if status != http.StatusInternalServerError {
		resp.Message = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
