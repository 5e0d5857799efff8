package seed

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasePrice_Rango(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	min := decimal.RequireFromString("1.00")
	max := decimal.RequireFromString("1500.00")
	for i := 0; i < 1000; i++ {
		p := PurchasePrice(r)
		assert.True(t, p.GreaterThanOrEqual(min), "precio %s por debajo del mínimo", p)
		assert.True(t, p.LessThanOrEqual(max), "precio %s por encima del máximo", p)
		// Exactamente dos decimales.
		assert.True(t, p.Exponent() >= -2, "precio %s con más de dos decimales", p)
	}
}

func TestRandomFactor_Rango(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		f := RandomFactor(r)
		assert.GreaterOrEqual(t, f, 1.10)
		assert.LessOrEqual(t, f, 2.20)
	}
}

func TestSalePrice_DentroDelRangoDelFactor(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	// Tolerancia por el redondeo a dos decimales.
	eps := decimal.RequireFromString("0.01")
	for i := 0; i < 1000; i++ {
		purchase := PurchasePrice(r)
		sale := SalePrice(purchase, RandomFactor(r))
		low := purchase.Mul(decimal.RequireFromString("1.10")).Sub(eps)
		high := purchase.Mul(decimal.RequireFromString("2.20")).Add(eps)
		assert.True(t, sale.GreaterThanOrEqual(low), "venta %s por debajo de compra %s x 1.10", sale, purchase)
		assert.True(t, sale.LessThanOrEqual(high), "venta %s por encima de compra %s x 2.20", sale, purchase)
		assert.True(t, sale.Exponent() >= -2, "venta %s con más de dos decimales", sale)
	}
}

func TestSalePrice_RedondeoMitadHaciaArriba(t *testing.T) {
	// 10.01 x 1.5 = 15.015 → 15.02
	purchase := decimal.RequireFromString("10.01")
	sale := SalePrice(purchase, 1.5)
	require.True(t, sale.Equal(decimal.RequireFromString("15.02")), "se obtuvo %s", sale)
}

func TestPurchasePrice_DeterministaConSemilla(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		pa := PurchasePrice(a)
		pb := PurchasePrice(b)
		require.True(t, pa.Equal(pb), "iteración %d: %s != %s", i, pa, pb)
	}
}
