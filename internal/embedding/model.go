// Package embedding provides the word-vector model behind intent matching and
// emotion scoring. Production loads a vector file or talks to a remote
// embedder; everything degrades through the Null model when neither is
// configured.
package embedding

import (
	"context"
	"math"
	"strings"
)

// Model turns text into a dense vector. Implementations must be safe for
// concurrent use; Embed reports false when the text is out of vocabulary or
// the backend failed, and callers treat that as "no information", not an error.
type Model interface {
	Available() bool
	Embed(ctx context.Context, text string) ([]float64, bool)
}

// Cosine returns the cosine similarity of two vectors, 0 when either has no
// magnitude or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// TextSimilarity scores two texts in [0, 1]. Identical texts (after trimming
// and lowercasing) are 1 by construction; otherwise the score is the cosine of
// the texts' embeddings with negative values clamped to zero.
func TextSimilarity(ctx context.Context, m Model, a, b string) float64 {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if m == nil || !m.Available() {
		return 0
	}

	va, ok := m.Embed(ctx, na)
	if !ok {
		return 0
	}
	vb, ok := m.Embed(ctx, nb)
	if !ok {
		return 0
	}

	sim := Cosine(va, vb)
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// MeanVector averages a set of vectors, skipping empties. Returns false when
// nothing contributed.
func MeanVector(vectors [][]float64) ([]float64, bool) {
	var sum []float64
	n := 0
	for _, v := range vectors {
		if len(v) == 0 {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(v))
		}
		if len(v) != len(sum) {
			continue
		}
		for i := range v {
			sum[i] += v[i]
		}
		n++
	}
	if n == 0 {
		return nil, false
	}
	for i := range sum {
		sum[i] /= float64(n)
	}
	return sum, true
}

// Null is the fallback model used when no vector source is configured.
type Null struct{}

func (Null) Available() bool { return false }

func (Null) Embed(context.Context, string) ([]float64, bool) { return nil, false }
