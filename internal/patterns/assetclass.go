package patterns

import "strings"

// memeTickers are equities whose price action is driven by social momentum
// rather than technicals; patterns there fail far more often.
var memeTickers = map[string]bool{
	"GME":  true,
	"AMC":  true,
	"BB":   true,
	"BBBY": true,
	"SPCE": true,
	"WISH": true,
	"CLOV": true,
	"FFIE": true,
	"MULN": true,
}

// AssetClassMultiplier maps a ticker's lexical form to a reliability
// multiplier. Applied multiplicatively so it composes with the confluence
// and backtest adjustments.
func AssetClassMultiplier(ticker string) float64 {
	switch {
	case strings.HasSuffix(ticker, "-USD"): // crypto spot pairs: 15% less reliable
		return 0.85
	case strings.HasSuffix(ticker, "=X"): // forex: 5% more reliable
		return 1.05
	case strings.HasSuffix(ticker, "=F"): // commodities/futures: neutral
		return 1.00
	case memeTickers[ticker]:
		return 0.70
	default:
		return 1.00
	}
}
