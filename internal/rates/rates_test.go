package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

func TestRate_TotalAndMonotonic(t *testing.T) {
	prev := decimal.Zero
	for _, id := range models.Currencies {
		rate, err := Rate(id)
		require.NoError(t, err, id)
		assert.True(t, rate.GreaterThan(prev), "rate of %s must exceed the previous rank", id)
		prev = rate
	}

	legendary, err := Rate(models.LegendaryBar)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", legendary.String())
}

func TestRate_Unsupported(t *testing.T) {
	_, err := Rate("Diamond")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestTable(t *testing.T) {
	table := Table()
	require.Len(t, table, len(models.Currencies))
	assert.Equal(t, models.Copper, table[0].CurrencyID)
	assert.Equal(t, 0, table[0].Rank)
	assert.Equal(t, models.LegendaryBar, table[6].CurrencyID)
	assert.Equal(t, 6, table[6].Rank)
}

func TestToBaseUnits(t *testing.T) {
	total, err := ToBaseUnits(models.Bundle{
		{CurrencyID: models.Silver, Amount: 3},
		{CurrencyID: models.Copper, Amount: 7},
		{CurrencyID: models.LegendaryBar, Amount: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "200000000000003007", total.String())

	_, err = ToBaseUnits(models.Bundle{{CurrencyID: "Diamond", Amount: 1}})
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestFromBaseUnits(t *testing.T) {
	tests := []struct {
		name   string
		from   models.CurrencyID
		amount int64
		to     models.CurrencyID
		want   int64
	}{
		// 1 Silver is worth a fraction of a Gold; the remainder is lost.
		{"lossy single silver to gold", models.Silver, 1, models.Gold, 0},
		{"exact silver to gold", models.Silver, 10_000, models.Gold, 1},
		{"lossy just below multiple", models.Silver, 19_999, models.Gold, 1},
		{"silver to electrum", models.Silver, 10_000, models.Electrum, 1_000},
		{"down is exact", models.Gold, 3, models.Silver, 30_000},
		{"legendary to copper", models.LegendaryBar, 5, models.Copper, 500_000_000_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := ToBaseUnits(models.Bundle{{CurrencyID: tt.from, Amount: tt.amount}})
			require.NoError(t, err)

			got, err := FromBaseUnits(tt.to, base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IntPart())
			assert.True(t, got.IsInteger())
		})
	}

	_, err := FromBaseUnits("Diamond", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestFromBaseUnits_RoundTripOnExactMultiples(t *testing.T) {
	for _, from := range models.Currencies {
		for _, to := range models.Currencies {
			fromRate, _ := Rate(from)
			toRate, _ := Rate(to)
			// Smallest amount of from that converts exactly into to.
			amount := int64(1)
			if toRate.GreaterThan(fromRate) {
				amount = toRate.Div(fromRate).IntPart()
			}

			base, err := ToBaseUnits(models.Bundle{{CurrencyID: from, Amount: amount}})
			require.NoError(t, err)
			credited, err := FromBaseUnits(to, base)
			require.NoError(t, err)

			back, err := ToBaseUnits(models.Bundle{{CurrencyID: to, Amount: credited.IntPart()}})
			require.NoError(t, err)
			assert.True(t, base.Equal(back), "%s -> %s", from, to)
		}
	}
}

func TestDescribe(t *testing.T) {
	s, err := Describe(models.Silver, models.Electrum)
	require.NoError(t, err)
	assert.Equal(t, "10 Silver = 1 Electrum", s)

	s, err = Describe(models.Gold, models.Silver)
	require.NoError(t, err)
	assert.Equal(t, "1 Gold = 10000 Silver", s)

	_, err = Describe(models.Gold, "Diamond")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}
