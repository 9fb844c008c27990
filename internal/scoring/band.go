package scoring

// Band is a named performance tier derived from the percentage score.
type Band string

const (
	BandBlue   Band = "blue"   // >= 95%
	BandGreen  Band = "green"  // >= 90%
	BandYellow Band = "yellow" // >= 75%
	BandRed    Band = "red"    // >= 50%
	BandPurple Band = "purple" // < 50%
)

// BandFromPercentage maps a percentage onto the fixed, total-ordered band
// thresholds.
func BandFromPercentage(percentage float64) Band {
	switch {
	case percentage >= 95:
		return BandBlue
	case percentage >= 90:
		return BandGreen
	case percentage >= 75:
		return BandYellow
	case percentage >= 50:
		return BandRed
	default:
		return BandPurple
	}
}
