package features

import (
	"math"

	"ChainLens/internal/domain/models"
)

// Defaults for the extraction tunables; overridable via config.
const (
	DefaultWindow        = 10
	DefaultEpsilon       = 1e-8
	DefaultTrendLookback = 5
	FeatureCount         = 3 // price, volume, liquidity columns
)

// Matrix is the fixed-shape normalized input of the sequence scorer.
// Data is [batch][window][feature] with batch always 1; it is produced once
// per request, consumed once, then discarded.
type Matrix struct {
	Window int
	Data   [][][]float64
}

// Shape returns (batch, window, features).
func (m *Matrix) Shape() (int, int, int) {
	return len(m.Data), m.Window, FeatureCount
}

// Normalize applies standard-score normalization (x - mean) / (stddev + eps)
// and fits the result to exactly window rows: right-aligned on the most
// recent entries when longer, left-padded with zeros when shorter. An empty
// series maps to a zero vector of window length. The epsilon keeps a
// constant-valued series at zero instead of NaN.
func Normalize(xs []float64, window int, eps float64) []float64 {
	out := make([]float64, window)
	if len(xs) == 0 {
		return out
	}

	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	n := float64(len(xs))
	mean := sum / n

	sum2 := 0.0
	for _, x := range xs {
		d := x - mean
		sum2 += d * d
	}
	std := math.Sqrt(sum2 / n)

	src := xs
	if len(src) > window {
		src = src[len(src)-window:]
	}
	// left-pad: most recent entry lands in the last row
	off := window - len(src)
	for i, x := range src {
		out[off+i] = (x - mean) / (std + eps)
	}
	return out
}

// Extract converts the raw histories of a record into a [1, window, 3]
// matrix. It never fails: missing or mismatched series degrade to zero
// columns.
func Extract(record *models.TokenDataRecord, window int, eps float64) *Matrix {
	if window <= 0 {
		window = DefaultWindow
	}
	cols := [FeatureCount][]float64{
		Normalize(record.PriceHistory, window, eps),
		Normalize(record.VolumeHistory, window, eps),
		Normalize(record.LiquidityData, window, eps),
	}

	rows := make([][]float64, window)
	for i := 0; i < window; i++ {
		row := make([]float64, FeatureCount)
		for j := 0; j < FeatureCount; j++ {
			row[j] = cols[j][i]
		}
		rows[i] = row
	}
	return &Matrix{Window: window, Data: [][][]float64{rows}}
}
