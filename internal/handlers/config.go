package handlers

//go:generate mockgen -source=config.go -destination=mock_config.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// ConfigGetter returns the exchange config currently in force.
type ConfigGetter interface {
	Config(ctx context.Context) (models.ExchangeConfig, error)
}

// NewGetConfigHandler returns the active exchange config.
// @Summary Get exchange config
// @Description Returns fee rates, minimum units and limits currently applied to exchanges
// @Tags exchange
// @Produce json
// @Success 200 {object} object "Exchange config document"
// @Failure 503 {object} models.ExchangeErrorResponse "Config unavailable"
// @Router /exchange/config [get]
func NewGetConfigHandler(getter ConfigGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := getter.Config(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}
