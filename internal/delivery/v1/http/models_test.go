package http

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[string]string{
		"5990":     "5990.00",
		"3490.9":   "3490.90",
		"1.500":    "1.50",
		"0":        "0.00",
		"1.005":    "1.005",
		"19.99999": "19.99999",
	}

	for in, want := range cases {
		assert.Equal(t, want, formatPrice(decimal.RequireFromString(in)), in)
	}
}

func TestToProductResponse_KeepsPrecision(t *testing.T) {
	p := domain.NewProduct(9, "Гвозди", decimal.RequireFromString("0.125"), "tools", "")

	resp := toProductResponse(p, "RUB")
	assert.Equal(t, "0.125", resp.Price)
	assert.Equal(t, "RUB", resp.Currency)
}
