package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
	"github.com/sbilibin2017/gw-currency-exchange/internal/rates"
)

// RatesResponse lists the Copper value of every supported currency
// swagger:model RatesResponse
type RatesResponse struct {
	// Base unit every rate is expressed in
	// example: Copper
	Base models.CurrencyID `json:"base"`

	// Rate table ordered by rank
	Rates []rates.Entry `json:"rates"`
}

// NewGetRatesHandler handles fetching the rate table
// @Summary Get exchange rates
// @Description Returns the fixed Copper value of every supported currency, lowest rank first
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.RatesResponse
// @Router /exchange/rates [get]
func NewGetRatesHandler() http.HandlerFunc {
	resp := RatesResponse{Base: models.Copper, Rates: rates.Table()}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
