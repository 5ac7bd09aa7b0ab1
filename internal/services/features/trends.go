package features

import "math"

// Trend labels for recent short-term price direction.
const (
	TrendUp       = "Upward Trend"
	TrendDown     = "Downward Trend"
	TrendSideways = "Sideways Movement"
)

// AnnualizationDays is the default factor base for volatility (sqrt(365)).
const AnnualizationDays = 365.0

// TrendLabels classifies the direction of the last up-to-lookback prices by
// the mean of consecutive differences. Fewer than 2 prices assert no trend.
func TrendLabels(prices []float64, lookback int) []string {
	if len(prices) < 2 {
		return []string{}
	}
	if lookback < 2 {
		lookback = DefaultTrendLookback
	}
	recent := prices
	if len(recent) > lookback {
		recent = recent[len(recent)-lookback:]
	}

	sum := 0.0
	for i := 1; i < len(recent); i++ {
		sum += recent[i] - recent[i-1]
	}
	mean := sum / float64(len(recent)-1)

	switch {
	case mean > 0:
		return []string{TrendUp}
	case mean < 0:
		return []string{TrendDown}
	default:
		return []string{TrendSideways}
	}
}

// ComputeLogReturns computes r_t = ln(p_t / p_{t-1}) over consecutive
// strictly positive prices. Pairs with a non-positive side are skipped so
// the logarithm stays defined.
func ComputeLogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		cur := prices[i]
		if prev <= 0 || cur <= 0 {
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

// AnnualizedVolatility is the sample standard deviation of log returns
// scaled by sqrt(days). A single return is measured against a zero mean so
// two unequal prices still carry a positive dispersion; no returns yield 0.
func AnnualizedVolatility(logReturns []float64, days float64) float64 {
	if days <= 0 {
		days = AnnualizationDays
	}
	if len(logReturns) == 0 {
		return 0
	}
	if len(logReturns) == 1 {
		return math.Abs(logReturns[0]) * math.Sqrt(days)
	}
	sum := 0.0
	sum2 := 0.0
	for _, r := range logReturns {
		sum += r
		sum2 += r * r
	}
	n := float64(len(logReturns))
	mean := sum / n
	variance := (sum2 - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * days)
}

// Volatility is the annualized volatility index of a raw price history:
// ComputeLogReturns piped into AnnualizedVolatility, degenerating to 0.
func Volatility(prices []float64, days float64) float64 {
	return AnnualizedVolatility(ComputeLogReturns(prices), days)
}
