// Package risk maps pending-wagon counts to demurrage-and-wharfage exposure.
package risk

// Tier is the demurrage-and-wharfage risk band for a rake.
type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// Per-pending-wagon cost rates in INR. Rule-of-thumb figures carried over
// from the depot demo, not tariff data.
const (
	highRateINR   = 820
	mediumRateINR = 490
)

// Estimate maps a pending-wagon count to a risk tier and a projected D&W
// cost in INR. Thresholds are strict: exactly 30 pending is still MEDIUM,
// exactly 10 is still LOW.
func Estimate(pending int) (Tier, int) {
	switch {
	case pending > 30:
		return TierHigh, pending * highRateINR
	case pending > 10:
		return TierMedium, pending * mediumRateINR
	default:
		return TierLow, 0
	}
}
