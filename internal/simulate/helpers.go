package simulate

import "math/big"

const amountScale = 6

func formatAmount(value float64) string {
	rat := new(big.Rat).SetFloat64(value)
	if rat == nil {
		return "0"
	}
	return rat.FloatString(amountScale)
}
