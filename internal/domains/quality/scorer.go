package quality

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

// Weights of each metric in the composite score.
const (
	weightRSRP = 0.35
	weightSINR = 0.35
	weightRSSI = 0.20
	weightRSRQ = 0.10
)

var (
	nonNumericRe = regexp.MustCompile(`[^-0-9.]`)
	numberRe     = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
)

// Score maps raw router metrics (e.g. "-75 dBm") to a composite percentage string like "82%".
func Score(rssi, sinr, rsrp, rsrq string) string {
	var (
		rssiScore = clamp(scoreRSSI(parseMetric(rssi)))
		sinrScore = clamp(scoreSINR(parseMetric(sinr)))
		rsrpScore = clamp(scoreRSRP(parseMetric(rsrp)))
		rsrqScore = clamp(scoreRSRQ(parseMetric(rsrq)))
	)

	overall := float64(rsrpScore*weightRSRP) +
		float64(sinrScore*weightSINR) +
		float64(rssiScore*weightRSSI) +
		float64(rsrqScore*weightRSRQ)

	return fmt.Sprintf("%d%%", int(math.Floor(overall+0.5)))
}

// Ratio converts a percentage string ("82%") to 0.82.
func Ratio(percent string) (ratio float64, err error) {
	value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(percent), "%"), 64)
	if err != nil {
		return ratio, fmt.Errorf("Ratio: %q: %w", percent, errs.ErrInvalidSignalQuality)
	}

	return value / 100, nil
}

// parseMetric keeps digits, minus and dot and reads the leading number. NaN when nothing is left.
func parseMetric(raw string) float64 {
	match := numberRe.FindString(nonNumericRe.ReplaceAllString(raw, ""))
	if match == "" {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(match, "."), 64)
	if err != nil {
		return math.NaN()
	}

	return value
}

// Each band is measured as the distance under its upper breakpoint, curves are
// non-decreasing. Products are wrapped in float64() so they are never fused (FMA).

// -50 = excellent, -70 = good, -85 = fair, -100 = poor.
func scoreRSSI(v float64) float64 {
	switch {
	case v >= -50:
		return 100
	case v >= -70:
		return 100 - float64((-50-v)*2.5)
	case v >= -85:
		return 50 - float64((-70-v)*2)
	case v >= -100:
		return 20 - float64((-85-v)*1.33)
	default:
		return 0
	}
}

// 20 = excellent, 13 = good, 0 = fair, below 0 = poor.
func scoreSINR(v float64) float64 {
	switch {
	case v >= 20:
		return 100
	case v >= 13:
		return 80 + float64((v-13)*2.86)
	case v >= 0:
		return 40 + float64(v*3.08)
	case v >= -10:
		return float64((v + 10) * 4)
	default:
		return 0
	}
}

// -80 = excellent, -90 = good, -100 = fair, -110 = poor.
func scoreRSRP(v float64) float64 {
	switch {
	case v >= -80:
		return 100
	case v >= -90:
		return 100 - float64((-80-v)*5)
	case v >= -100:
		return 50 - float64((-90-v)*3)
	case v >= -110:
		return 20 - float64((-100-v)*2)
	default:
		return 0
	}
}

// -3 = excellent, -6 = good, -9 = fair, -15 = poor.
func scoreRSRQ(v float64) float64 {
	switch {
	case v >= -3:
		return 100
	case v >= -6:
		return 100 - float64((-3-v)*16.67)
	case v >= -9:
		return 50 - float64((-6-v)*10)
	case v >= -15:
		return 20 - float64((-9-v)*3.33)
	default:
		return 0
	}
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
