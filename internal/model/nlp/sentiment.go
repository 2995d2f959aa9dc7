package nlp

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Mood levels for the productivity triple.
const (
	MoodHigh    = "high"
	MoodNeutral = "neutral"
	MoodLow     = "low"
)

// ProductivityMood summarizes a text's emotional signal for coaching purposes.
type ProductivityMood struct {
	Motivation   string `json:"motivation"`
	Productivity string `json:"productivity"`
	Stress       string `json:"stress"`
}

// SentimentResult carries polarity, per-emotion strengths and the mood triple.
// Score stays within [-1, 1]; emotion strengths within [0.3, 1] (weaker
// emotions are dropped from the map entirely).
type SentimentResult struct {
	Sentiment string             `json:"sentiment"`
	Score     float64            `json:"score"`
	Emotions  map[string]float64 `json:"emotions"`
	Mood      ProductivityMood   `json:"productivity_mood"`
	Note      string             `json:"note,omitempty"`
}

// NeutralSentiment is the shared degraded result used whenever the model is
// unavailable, the text carries no signal, or scoring fails internally.
func NeutralSentiment(note string) SentimentResult {
	return SentimentResult{
		Sentiment: SentimentNeutral,
		Score:     0,
		Emotions:  map[string]float64{},
		Mood: ProductivityMood{
			Motivation:   MoodNeutral,
			Productivity: MoodNeutral,
			Stress:       MoodNeutral,
		},
		Note: note,
	}
}

// Insights pairs observations about the user's state with actionable advice.
type Insights struct {
	Insights    []string         `json:"insights"`
	Suggestions []string         `json:"suggestions"`
	Mood        ProductivityMood `json:"mood"`
}
