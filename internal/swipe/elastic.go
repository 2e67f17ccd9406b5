package swipe

import "math"

// Elasticity constants
const (
	// ElasticScrollRatio damps release velocity once clamping engaged
	ElasticScrollRatio = 0.4
	// DefaultElasticRatio is the share of overshoot that still moves the row
	DefaultElasticRatio = 0.2
)

// elasticTranslation returns the content center for a drag of translation
// starting at originalCenter. Beyond limit from midX only ratio of the extra
// distance is applied.
func elasticTranslation(translation, originalCenter, midX, limit, ratio float64) float64 {
	updated := originalCenter + translation
	distance := math.Abs(updated - midX)
	if distance <= limit {
		return updated
	}
	sign := 1.0
	if updated < midX {
		sign = -1
	}
	return updated - (1-ratio)*(distance-limit)*sign
}
