package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

func TestGetConfigHandler(t *testing.T) {
	cfg, err := models.ParseExchangeConfig([]byte(`{"version":"v3","feeRate":{"G_to_P":0.15}}`))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		getter := NewMockConfigGetter(ctrl)
		getter.EXPECT().Config(gomock.Any()).Return(cfg, nil)

		rr := httptest.NewRecorder()
		NewGetConfigHandler(getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exchange/config", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"version":"v3"`)
		assert.Contains(t, rr.Body.String(), `"Gold_to_Platinum"`)
	})

	t.Run("unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		getter := NewMockConfigGetter(ctrl)
		getter.EXPECT().Config(gomock.Any()).Return(models.ExchangeConfig{}, fmt.Errorf("%w: no rows", models.ErrConfigUnavailable))

		rr := httptest.NewRecorder()
		NewGetConfigHandler(getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exchange/config", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "CONFIG_UNAVAILABLE")
	})
}
