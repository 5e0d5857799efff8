package seed

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// PurchasePrice genera un precio de compra uniforme entre 1.00 y 1500.00,
// siempre con dos decimales exactos.
func PurchasePrice(r *rand.Rand) decimal.Decimal {
	cents := int64(r.Intn(149901) + 100) // 100..150000 centavos
	return decimal.New(cents, -2)
}

// RandomFactor genera el multiplicador de venta, uniforme en [1.10, 2.20].
func RandomFactor(r *rand.Rand) float64 {
	return 1.10 + r.Float64()*1.10
}

// SalePrice calcula el precio de venta: compra por factor, redondeado a dos
// decimales con la mitad hacia arriba.
func SalePrice(purchase decimal.Decimal, factor float64) decimal.Decimal {
	return purchase.Mul(decimal.NewFromFloat(factor)).Round(2)
}

func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
