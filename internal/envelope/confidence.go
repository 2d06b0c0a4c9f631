package envelope

import "route2file/internal/routes"

// TierFor maps a resolution confidence to an envelope tier.
//
// Tier mapping:
//   - exact -> high
//   - keyword-unique -> medium
//   - keyword-best -> low
//   - not found -> none
func TierFor(c routes.Confidence) ConfidenceTier {
	switch c {
	case routes.ConfidenceExact:
		return TierHigh
	case routes.ConfidenceKeywordUnique:
		return TierMedium
	case routes.ConfidenceKeywordBest:
		return TierLow
	default:
		return TierNone
	}
}
