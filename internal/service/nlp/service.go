// Package nlp composes the analysis pipeline into the five public operations
// the HTTP layer calls: text analysis, entity extraction, sentiment scoring,
// intent detection and command parsing.
package nlp

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/taskmind/backend/internal/analysis/entity"
	"github.com/taskmind/backend/internal/analysis/sentiment"
	"github.com/taskmind/backend/internal/analysis/text"
	"github.com/taskmind/backend/internal/embedding"
	"github.com/taskmind/backend/internal/model/intent"
	"github.com/taskmind/backend/internal/model/nlp"
)

// intentThreshold is the minimum average pattern similarity an intent must
// reach to be accepted.
const intentThreshold = 0.60

const (
	genericIntentResponse = "I'm not sure what you want to do."
	processFailedResponse = "I couldn't process that command."
	internalErrorResponse = "I encountered an error processing your request."
)

// IntentResult is the classifier's answer for one text.
type IntentResult struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"`
	Response   string  `json:"response"`
}

// Service evaluates one-shot pipeline requests. All shared state (model,
// intents, reference vectors) is immutable after construction; the random
// source is the only guarded member.
type Service struct {
	model     embedding.Model
	analyzer  *sentiment.Analyzer
	extractor *entity.Extractor
	intents   []intent.Definition
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService wires the pipeline. rng and now are injectable for deterministic
// tests; nil selects time-seeded and wall-clock defaults.
func NewService(model embedding.Model, analyzer *sentiment.Analyzer, intents []intent.Definition, rng *rand.Rand, now func() time.Time) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		model:     model,
		analyzer:  analyzer,
		extractor: entity.NewExtractor(now),
		intents:   intents,
		now:       now,
		rng:       rng,
	}
}

func (s *Service) modelAvailable() bool {
	return s.model != nil && s.model.Available()
}

// AnalyzeText returns tokens, entity spans, sentence boundaries, noun chunks
// and the sentiment label for text. Degrades to empty slices when the model
// is unavailable or text is empty.
func (s *Service) AnalyzeText(ctx context.Context, input string) (result nlp.Analysis) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[nlp] analyze panic recovered: %v", r)
			result = emptyAnalysis()
		}
	}()

	if !s.modelAvailable() || strings.TrimSpace(input) == "" {
		return emptyAnalysis()
	}

	features := text.Extract(input)
	extraction := s.extractor.Extract(input)

	analysis := nlp.Analysis{
		Tokens:     features.Tokens,
		Entities:   extraction.Spans,
		Sentences:  features.Sentences,
		NounChunks: features.NounChunks,
		Sentiment:  nlp.SentimentNeutral,
	}
	if analysis.Tokens == nil {
		analysis.Tokens = []nlp.Token{}
	}
	if analysis.Entities == nil {
		analysis.Entities = []nlp.Entity{}
	}
	if s.analyzer != nil {
		analysis.Sentiment = s.analyzer.Analyze(ctx, input).Sentiment
	}
	return analysis
}

func emptyAnalysis() nlp.Analysis {
	return nlp.Analysis{
		Tokens:    []nlp.Token{},
		Entities:  []nlp.Entity{},
		Sentiment: nlp.SentimentNeutral,
	}
}

// ExtractEntities returns the per-type value mapping for text, relative dates
// normalized. Empty map when the model is unavailable or text is empty.
func (s *Service) ExtractEntities(ctx context.Context, input string) (result nlp.EntityMap) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[nlp] entity extraction panic recovered: %v", r)
			result = nlp.EntityMap{}
		}
	}()

	if !s.modelAvailable() || strings.TrimSpace(input) == "" {
		return nlp.EntityMap{}
	}
	return s.extractor.Extract(input).ByType
}

// AnalyzeSentiment scores polarity, emotions and productivity mood.
func (s *Service) AnalyzeSentiment(ctx context.Context, input string) nlp.SentimentResult {
	if s.analyzer == nil {
		return nlp.NeutralSentiment("")
	}
	return s.analyzer.Analyze(ctx, input)
}

// Insights derives coaching observations from the sentiment signal.
func (s *Service) Insights(ctx context.Context, input string) nlp.Insights {
	if s.analyzer == nil {
		return nlp.Insights{
			Insights:    []string{},
			Suggestions: []string{},
			Mood:        nlp.NeutralSentiment("").Mood,
		}
	}
	return s.analyzer.Insights(ctx, input)
}

// DetectIntent scores input against every intent's patterns and returns the
// best match above the confidence threshold, or unknown with the observed
// score. Ties resolve to the first definition reaching the maximum.
func (s *Service) DetectIntent(ctx context.Context, input string) IntentResult {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || !s.modelAvailable() || len(s.intents) == 0 {
		return IntentResult{Tag: "unknown", Confidence: 0, Response: genericIntentResponse}
	}

	maxScore := 0.0
	var best *intent.Definition
	for i := range s.intents {
		def := &s.intents[i]
		if len(def.Patterns) == 0 {
			continue
		}
		total := 0.0
		for _, pattern := range def.Patterns {
			total += embedding.TextSimilarity(ctx, s.model, input, pattern)
		}
		avg := total / float64(len(def.Patterns))
		if avg > maxScore {
			maxScore = avg
			best = def
		}
	}

	if best == nil || maxScore <= intentThreshold {
		return IntentResult{Tag: "unknown", Confidence: maxScore, Response: genericIntentResponse}
	}
	return IntentResult{
		Tag:        best.Tag,
		Confidence: maxScore,
		Response:   s.pickResponse(best.Responses),
	}
}

func (s *Service) pickResponse(responses []string) string {
	if len(responses) == 0 {
		return genericIntentResponse
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return responses[s.rng.Intn(len(responses))]
}
