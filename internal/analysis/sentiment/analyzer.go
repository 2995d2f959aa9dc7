// Package sentiment scores polarity, named emotions and the productivity mood
// triple by comparing token embeddings against curated reference sets.
package sentiment

import (
	"context"
	"log"
	"strings"

	"github.com/taskmind/backend/internal/analysis/text"
	"github.com/taskmind/backend/internal/embedding"
	"github.com/taskmind/backend/internal/model/nlp"
)

// Scoring thresholds, matched to the reference semantics.
const (
	polarityThreshold = 0.7
	emotionThreshold  = 0.5
	emotionFloor      = 0.3
	labelThreshold    = 0.2
	moodThreshold     = 0.3
)

// Analyzer holds the immutable reference vectors shared by all requests.
type Analyzer struct {
	model        embedding.Model
	positiveVecs [][]float64
	negativeVecs [][]float64
	emotionVecs  map[string][]float64
}

// NewAnalyzer precomputes seed-word and emotion reference vectors. With no
// usable model the analyzer still works, answering the neutral default.
func NewAnalyzer(ctx context.Context, model embedding.Model) *Analyzer {
	a := &Analyzer{model: model, emotionVecs: map[string][]float64{}}
	if model == nil || !model.Available() {
		return a
	}

	a.positiveVecs = wordVectors(ctx, model, positiveWords)
	a.negativeVecs = wordVectors(ctx, model, negativeWords)

	for emotion, seeds := range emotionLexicon {
		if mean, ok := embedding.MeanVector(wordVectors(ctx, model, seeds)); ok {
			a.emotionVecs[emotion] = mean
		}
	}
	return a
}

func wordVectors(ctx context.Context, model embedding.Model, words []string) [][]float64 {
	out := make([][]float64, 0, len(words))
	for _, w := range words {
		if vec, ok := model.Embed(ctx, w); ok {
			out = append(out, vec)
		}
	}
	return out
}

// Available reports whether reference vectors were built.
func (a *Analyzer) Available() bool {
	return a != nil && a.model != nil && a.model.Available()
}

// Analyze scores one text. It never fails hard: missing model, empty text or
// an internal fault all collapse to the neutral default.
func (a *Analyzer) Analyze(ctx context.Context, input string) (result nlp.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[sentiment] analysis panic recovered: %v", r)
			result = nlp.NeutralSentiment("internal error during analysis")
		}
	}()

	if !a.Available() || strings.TrimSpace(input) == "" {
		return nlp.NeutralSentiment("")
	}

	tokens := significantTokens(input)
	if len(tokens) == 0 {
		return nlp.NeutralSentiment("")
	}

	var vectors [][]float64
	for _, tok := range tokens {
		vec, ok := a.model.Embed(ctx, strings.ToLower(tok.Text))
		if !ok {
			vec = nil
		}
		vectors = append(vectors, vec)
	}

	score, label := a.polarity(vectors)
	emotions := a.emotions(vectors)

	return nlp.SentimentResult{
		Sentiment: label,
		Score:     score,
		Emotions:  emotions,
		Mood:      moodFromEmotions(emotions),
	}
}

func significantTokens(input string) []nlp.Token {
	var out []nlp.Token
	for _, tok := range text.Tokenize(input) {
		if tok.IsStop || tok.POS == "PUNCT" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// polarity counts tokens that sit close to the positive or negative seed set
// and folds the counts into a score in [-1, 1].
func (a *Analyzer) polarity(vectors [][]float64) (float64, string) {
	positives, negatives := 0, 0
	for _, vec := range vectors {
		if len(vec) == 0 {
			continue
		}
		switch {
		case anyAbove(vec, a.positiveVecs, polarityThreshold):
			positives++
		case anyAbove(vec, a.negativeVecs, polarityThreshold):
			negatives++
		}
	}

	if positives+negatives == 0 {
		return 0, nlp.SentimentNeutral
	}
	score := float64(positives-negatives) / float64(positives+negatives)

	label := nlp.SentimentNeutral
	if score > labelThreshold {
		label = nlp.SentimentPositive
	} else if score < -labelThreshold {
		label = nlp.SentimentNegative
	}
	return score, label
}

func anyAbove(vec []float64, refs [][]float64, threshold float64) bool {
	for _, ref := range refs {
		if embedding.Cosine(vec, ref) > threshold {
			return true
		}
	}
	return false
}

// emotions accumulates per-emotion similarity totals, normalizes by the
// strongest emotion and drops anything under the floor. When every total is
// zero the division is skipped and the map stays empty.
func (a *Analyzer) emotions(vectors [][]float64) map[string]float64 {
	totals := map[string]float64{}
	for _, vec := range vectors {
		if len(vec) == 0 {
			continue
		}
		for emotion, ref := range a.emotionVecs {
			if sim := embedding.Cosine(vec, ref); sim > emotionThreshold {
				totals[emotion] += sim
			}
		}
	}

	maxTotal := 0.0
	for _, total := range totals {
		if total > maxTotal {
			maxTotal = total
		}
	}
	if maxTotal == 0 {
		return map[string]float64{}
	}

	out := map[string]float64{}
	for emotion, total := range totals {
		normalized := total / maxTotal
		if normalized >= emotionFloor {
			out[emotion] = normalized
		}
	}
	return out
}

func moodFromEmotions(emotions map[string]float64) nlp.ProductivityMood {
	return nlp.ProductivityMood{
		Motivation:   moodLevel(emotions["motivated"] - emotions["unmotivated"]),
		Productivity: moodLevel(emotions["productive"] - emotions["unproductive"]),
		Stress:       moodLevel(emotions["stressed"] - emotions["relieved"]),
	}
}

func moodLevel(diff float64) string {
	switch {
	case diff > moodThreshold:
		return nlp.MoodHigh
	case diff < -moodThreshold:
		return nlp.MoodLow
	default:
		return nlp.MoodNeutral
	}
}
