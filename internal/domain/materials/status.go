package materials

// Band upper bounds as a fraction of max stock, inclusive.
const (
	criticalRatio = 0.15
	lowRatio      = 0.30
	optimalRatio  = 0.80
)

// Classify derives the stock band from current and max stock.
// Overfill is allowed and lands in StatusHigh. A non-positive max classifies
// any positive stock as high and an empty stock as critical.
func Classify(current, max float64) Status {
	if max <= 0 {
		if current > 0 {
			return StatusHigh
		}
		return StatusCritical
	}
	// compare the ratio directly: scaling by 100 first pushes 15% past the bound
	ratio := current / max
	switch {
	case ratio <= criticalRatio:
		return StatusCritical
	case ratio <= lowRatio:
		return StatusLow
	case ratio <= optimalRatio:
		return StatusOptimal
	default:
		return StatusHigh
	}
}
