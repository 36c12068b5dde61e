package scoring

import (
	"math"
	"strings"
)

// Quality labels
const (
	LabelExcellent = "Excellent"
	LabelGood      = "Good"
	LabelFair      = "Fair"
	LabelPoor      = "Poor"
	LabelVeryPoor  = "Very Poor"
)

// Color tiers for UI consumers
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Labels lists the quality labels from best to worst
var Labels = []string{LabelExcellent, LabelGood, LabelFair, LabelPoor, LabelVeryPoor}

// Label returns the quality label for score
func Label(score int) string {
	switch {
	case score >= 90:
		return LabelExcellent
	case score >= 75:
		return LabelGood
	case score >= 60:
		return LabelFair
	case score >= 40:
		return LabelPoor
	default:
		return LabelVeryPoor
	}
}

// StarCount returns round(score/20), clamped to 0-5
func StarCount(score int) int {
	return int(math.Round(float64(clamp(score)) / 20))
}

// Stars renders the star rating as five runes, filled first
func Stars(score int) string {
	n := StarCount(score)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// ColorTier maps a quality label to a display color
func ColorTier(label string) string {
	switch label {
	case LabelExcellent:
		return ColorGreen
	case LabelGood:
		return ColorBlue
	case LabelFair:
		return ColorYellow
	default:
		return ColorRed
	}
}
