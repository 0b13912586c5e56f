// Package eta provides the arrival-offset estimate for an inbound rake.
package eta

// DefaultSpeedKMPH substitutes for non-positive speed inputs so the
// prediction never divides by zero.
const DefaultSpeedKMPH = 20.0

// Predict returns the minutes until arrival for the remaining distance at
// the given average speed. The caller adds the result to the current time to
// get a predicted arrival timestamp.
func Predict(distanceKM, avgSpeedKMPH float64) int {
	if avgSpeedKMPH <= 0 {
		avgSpeedKMPH = DefaultSpeedKMPH
	}
	return int((distanceKM / avgSpeedKMPH) * 60)
}
