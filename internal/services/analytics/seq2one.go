package analytics

import (
	"fmt"
	"math"
	"math/rand"

	"ChainLens/internal/services/features"
)

// ScorerParams holds the trained parameters of the sequence-to-one scorer:
// a single tanh recurrent cell followed by a linear projection to one
// scalar. Parameters are generated once at startup from a fixed seed and
// shared read-only across requests; inference never mutates them.
type ScorerParams struct {
	hidden int
	wx     [][]float64 // hidden x features
	wh     [][]float64 // hidden x hidden
	b      []float64   // hidden
	wo     []float64   // hidden
	bo     float64
}

// NewScorerParams builds deterministic parameters for the given hidden size
// and feature count. The same seed always yields the same scorer.
func NewScorerParams(seed int64, hidden, featureCount int) *ScorerParams {
	if hidden <= 0 {
		hidden = 16
	}
	rng := rand.New(rand.NewSource(seed))
	scaleIn := 1.0 / math.Sqrt(float64(featureCount))
	scaleH := 1.0 / math.Sqrt(float64(hidden))

	p := &ScorerParams{
		hidden: hidden,
		wx:     make([][]float64, hidden),
		wh:     make([][]float64, hidden),
		b:      make([]float64, hidden),
		wo:     make([]float64, hidden),
	}
	for i := 0; i < hidden; i++ {
		p.wx[i] = make([]float64, featureCount)
		for j := range p.wx[i] {
			p.wx[i][j] = rng.NormFloat64() * scaleIn
		}
		p.wh[i] = make([]float64, hidden)
		for j := range p.wh[i] {
			p.wh[i][j] = rng.NormFloat64() * scaleH
		}
		p.wo[i] = rng.NormFloat64() * scaleH
	}
	return p
}

// Score runs the recurrence over a [1, window, features] matrix and returns
// the scalar projection of the final hidden state. It rejects malformed
// shapes and non-finite results instead of propagating them downstream.
func (p *ScorerParams) Score(m *features.Matrix) (float64, error) {
	if m == nil || len(m.Data) != 1 {
		return 0, fmt.Errorf("scorer: expected batch of 1")
	}
	rows := m.Data[0]
	if len(rows) == 0 {
		return 0, fmt.Errorf("scorer: empty window")
	}

	h := make([]float64, p.hidden)
	next := make([]float64, p.hidden)
	for _, row := range rows {
		if len(row) != len(p.wx[0]) {
			return 0, fmt.Errorf("scorer: row width %d, want %d", len(row), len(p.wx[0]))
		}
		for i := 0; i < p.hidden; i++ {
			z := p.b[i]
			for j, x := range row {
				z += p.wx[i][j] * x
			}
			for j, hv := range h {
				z += p.wh[i][j] * hv
			}
			next[i] = math.Tanh(z)
		}
		h, next = next, h
	}

	out := p.bo
	for i, hv := range h {
		out += p.wo[i] * hv
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("scorer: non-finite output")
	}
	return out, nil
}
