package estimate

import (
	"fmt"
	"math/big"
	"strings"
)

// renderBar draws a fixed-width filled/empty bar with a two-decimal
// percentage, matching the legacy report layout.
func renderBar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("█", filled))
	b.WriteString(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("[%s] %.2f%%", b.String(), percent)
}

// timeUnits from finest to coarsest; FormatSeconds picks the coarsest one
// whose threshold the value crosses.
var timeUnits = []struct {
	seconds float64
	name    string
}{
	{60, "second"},
	{3600, "minute"},
	{86400, "hour"},
	{604800, "day"},
	{2592000, "week"},
	{31536000, "month"},
	{315360000, "year"},
	{0, "decade"},
}

// FormatSeconds renders an arbitrarily large seconds value in the coarsest
// human unit. Magnitudes beyond float64 range fall back to exponential
// notation in years.
func FormatSeconds(seconds *big.Float) string {
	// Each entry's threshold equals one unit of the next entry, so the
	// last crossed threshold doubles as the divisor.
	divisor := 1.0
	unit := "second"
	for _, u := range timeUnits {
		if u.seconds == 0 || seconds.Cmp(big.NewFloat(u.seconds)) < 0 {
			unit = u.name
			break
		}
		divisor = u.seconds
	}

	value := new(big.Float).Quo(seconds, big.NewFloat(divisor))
	v, _ := value.Float64()
	if v > 1e15 {
		years := new(big.Float).Quo(seconds, big.NewFloat(31536000))
		return fmt.Sprintf("%s years", years.Text('e', 2))
	}
	name := unit
	if v < 1 || v >= 2 {
		name += "s"
	}
	return fmt.Sprintf("%.1f %s", v, name)
}

// FormatCombinations renders a combination count, switching to exponential
// notation once the value stops being readable.
func FormatCombinations(combinations *big.Float) string {
	if combinations.Cmp(big.NewFloat(1e15)) >= 0 {
		return combinations.Text('e', 2)
	}
	v, _ := combinations.Float64()
	return fmt.Sprintf("%.0f", v)
}
