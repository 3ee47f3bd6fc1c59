package util

import (
	"fmt"
)

func FormatTemperature(T float64) string {
	switch {
	case T >= 1e6:
		return fmt.Sprintf("%.3g K", T)
	case T >= 1000:
		return fmt.Sprintf("%.0f K", T)
	default:
		return fmt.Sprintf("%.1f K", T)
	}
}

func FormatDensity(n float64) string {
	return fmt.Sprintf("%.3e cm^-3", n)
}

func FormatFraction(f float64) string {
	if f != 0 && f < 1e-4 {
		return fmt.Sprintf("%.3e", f)
	}
	return fmt.Sprintf("%.6f", f)
}

func FormatPercent(f float64) string {
	return fmt.Sprintf("%.3f%%", f*100)
}
