package utils

import (
	"fmt"
	"math"
)

// FormatRupee renders an amount as printed on the slip: rupee sign plus two
// fixed decimals. Half-away-from-zero rounding, not the round-half-even that
// fmt alone would give. Non-finite input counts as zero, matching the
// dashboard's treatment of missing amounts.
func FormatRupee(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rounded := math.Round(amount*100) / 100
	return fmt.Sprintf("₹%.2f", rounded)
}
