package css

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/tyse/core/dimen"
)

// Diagram coordinates are measured in big points (1/72 in), which is what
// CSS calls a pixel. Lengths with other units are converted via scaled points
// and have to be representable as a dimen.DU.
var bigPoint = float64(dimen.BP)

// toDiagramUnits converts a length into diagram units. It reports false for
// unknown units and for lengths out of range.
func toDiagramUnits(x float64, unit string) (float64, bool) {
	var sp float64
	switch strings.ToLower(unit) {
	case "", "px", "bp":
		return x, true
	case "pt":
		sp = x * float64(dimen.PT)
	case "pc":
		sp = x * 12 * float64(dimen.PT)
	case "in":
		sp = x * 72 * bigPoint
	case "cm":
		sp = x * 72 / 2.54 * bigPoint
	case "mm":
		sp = x * 72 / 25.4 * bigPoint
	default:
		return 0, false
	}
	sp = math.Round(sp)
	if sp > math.MaxInt32 || sp < math.MinInt32 || math.IsNaN(sp) {
		return 0, false
	}
	return float64(dimen.DU(sp)) / bigPoint, true
}

// splitDimension separates number and unit of a dimension token, e.g.
// "12pt" => 12, "pt".
func splitDimension(s string) (float64, string, bool) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || (i == 0 && (r == '-' || r == '+')) {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, "", false
	}
	x, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return x, strings.ToLower(s[numEnd:]), true
}
