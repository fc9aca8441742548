package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

func TestGetRatesHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewGetRatesHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exchange/rates", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp RatesResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, models.Copper, resp.Base)
	require.Len(t, resp.Rates, len(models.Currencies))
	assert.Equal(t, models.Copper, resp.Rates[0].CurrencyID)
	assert.Equal(t, models.LegendaryBar, resp.Rates[len(resp.Rates)-1].CurrencyID)
	assert.Equal(t, "10000", resp.Rates[2].Copper.String())
}
