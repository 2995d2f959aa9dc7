// Package suggest generates personalized task suggestions from temporal
// patterns, user preferences and situational context. The engine does not
// touch raw text; it consumes a profile and a context map.
package suggest

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/taskmind/backend/internal/model/profile"
	"github.com/taskmind/backend/internal/model/suggest"
)

// Per-stage candidate caps and source confidences.
const (
	dayCap      = 2
	timeCap     = 2
	categoryCap = 3
	contextCap  = 2

	dayConfidence      = 0.8
	timeConfidence     = 0.75
	categoryConfidence = 0.7
	contextConfidence  = 0.85
	genericConfidence  = 0.5
)

// DefaultCount is used when a caller does not request a specific count.
const DefaultCount = 5

// Engine produces deduplicated ranked suggestion lists. The profile store is
// the only shared mutable collaborator; the random source is guarded locally.
type Engine struct {
	profiles profile.Store
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine builds an engine. rng and now are injectable for deterministic
// tests; nil selects time-seeded and wall-clock defaults.
func NewEngine(profiles profile.Store, rng *rand.Rand, now func() time.Time) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{profiles: profiles, now: now, rng: rng}
}

// SuggestTasks returns up to count unique suggestions for the user, blending
// day patterns, time-of-day patterns, category preferences and situational
// context, backfilled from the generic pool. Any internal failure yields the
// fixed fallback list instead of an error.
func (e *Engine) SuggestTasks(userID string, ctx suggest.Context, count int) (result []suggest.Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[suggest] generation panic recovered: %v", r)
			result = fallbackSuggestions()
		}
	}()

	if count <= 0 {
		count = DefaultCount
	}
	prof := e.profiles.GetOrCreate(userID)
	now := e.now()

	var candidates []suggest.Suggestion
	candidates = append(candidates, e.daySuggestions(prof, now)...)
	candidates = append(candidates, e.timeSuggestions(prof, now)...)
	candidates = append(candidates, e.categorySuggestions(prof)...)
	candidates = append(candidates, e.contextSuggestions(ctx)...)

	unique := dedupe(candidates)
	unique = e.backfill(unique, count)

	if len(unique) > count {
		unique = unique[:count]
	}
	return unique
}

// daySuggestions samples up to two items for the current weekday, preferring
// the profile's day→category mapping over the global calendar.
func (e *Engine) daySuggestions(prof profile.UserProfile, now time.Time) []suggest.Suggestion {
	weekday := now.Weekday().String()
	reason := "Common for " + weekday

	if categories := prof.DayCategories[weekday]; len(categories) > 0 {
		var pool []suggest.Suggestion
		for _, category := range categories {
			for _, tmpl := range categoryTasks[category] {
				pool = append(pool, suggest.Suggestion{
					Text:       e.fillSlots(tmpl),
					Category:   category,
					Reason:     reason,
					Confidence: dayConfidence,
				})
			}
		}
		return e.sample(pool, dayCap)
	}

	var pool []suggest.Suggestion
	for _, task := range dayTasks[weekday] {
		pool = append(pool, suggest.Suggestion{
			Text:       task,
			Category:   "general",
			Reason:     reason,
			Confidence: dayConfidence,
		})
	}
	return e.sample(pool, dayCap)
}

// timeSuggestions samples up to two items for the current time-of-day bucket.
func (e *Engine) timeSuggestions(prof profile.UserProfile, now time.Time) []suggest.Suggestion {
	bucket := timeOfDay(now.Hour())
	reason := "Fits your " + bucket + " routine"

	if categories := prof.TimeCategories[bucket]; len(categories) > 0 {
		var pool []suggest.Suggestion
		for _, category := range categories {
			for _, tmpl := range categoryTasks[category] {
				pool = append(pool, suggest.Suggestion{
					Text:       e.fillSlots(tmpl),
					Category:   category,
					Reason:     reason,
					Confidence: timeConfidence,
				})
			}
		}
		return e.sample(pool, timeCap)
	}

	var pool []suggest.Suggestion
	for _, task := range timeTasks[bucket] {
		pool = append(pool, suggest.Suggestion{
			Text:       task,
			Category:   "general",
			Reason:     reason,
			Confidence: timeConfidence,
		})
	}
	return e.sample(pool, timeCap)
}

// categorySuggestions samples one or two templates from each preferred
// category, capped at three items for the stage.
func (e *Engine) categorySuggestions(prof profile.UserProfile) []suggest.Suggestion {
	var out []suggest.Suggestion
	for _, category := range prof.PreferredCategories {
		templates := categoryTasks[category]
		if len(templates) == 0 {
			continue
		}
		n := 1 + e.intn(2)
		for _, tmpl := range e.sampleStrings(templates, n) {
			out = append(out, suggest.Suggestion{
				Text:       e.fillSlots(tmpl),
				Category:   category,
				Reason:     "Based on your " + category + " preference",
				Confidence: categoryConfidence,
			})
		}
	}
	if len(out) > categoryCap {
		out = out[:categoryCap]
	}
	return out
}

// contextSuggestions builds a pool from location, activity and mood hints and
// samples at most two from it.
func (e *Engine) contextSuggestions(ctx suggest.Context) []suggest.Suggestion {
	var texts []string

	location := strings.ToLower(ctx.Get("location"))
	switch {
	case strings.Contains(location, "home"):
		texts = append(texts, homeTasks...)
	case strings.Contains(location, "office"), strings.Contains(location, "work"):
		texts = append(texts, officeTasks...)
	case strings.Contains(location, "travel"), strings.Contains(location, "trip"):
		texts = append(texts, travelTasks...)
	}

	activity := strings.ToLower(ctx.Get("activity"))
	if strings.Contains(activity, "working") || strings.Contains(activity, "focusing") {
		texts = append(texts, focusBreakTasks...)
	} else if strings.Contains(activity, "meeting") {
		texts = append(texts, meetingTasks...)
	}

	mood := strings.ToLower(ctx.Get("mood"))
	if containsAny(mood, "tired", "exhausted", "stressed", "overwhelmed", "drained") {
		texts = append(texts, restTasks...)
	} else if containsAny(mood, "energized", "focused", "motivated", "fresh") {
		texts = append(texts, priorityWorkTasks...)
	}

	pool := make([]suggest.Suggestion, 0, len(texts))
	for _, t := range texts {
		pool = append(pool, suggest.Suggestion{
			Text:       t,
			Category:   "context",
			Reason:     "Suggested by your current context",
			Confidence: contextConfidence,
		})
	}
	return e.sample(pool, contextCap)
}

// backfill appends generic tasks, sampled without replacement, until the list
// reaches count or the pool is exhausted.
func (e *Engine) backfill(unique []suggest.Suggestion, count int) []suggest.Suggestion {
	if len(unique) >= count {
		return unique
	}
	seen := make(map[string]struct{}, len(unique))
	for _, s := range unique {
		seen[s.Text] = struct{}{}
	}

	for _, task := range e.sampleStrings(genericTasks, len(genericTasks)) {
		if len(unique) >= count {
			break
		}
		if _, dup := seen[task]; dup {
			continue
		}
		seen[task] = struct{}{}
		unique = append(unique, suggest.Suggestion{
			Text:       task,
			Category:   "general",
			Reason:     "General productivity",
			Confidence: genericConfidence,
		})
	}
	return unique
}

// dedupe collapses candidates to unique texts, first-seen order preserved.
func dedupe(candidates []suggest.Suggestion) []suggest.Suggestion {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]suggest.Suggestion, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.Text]; dup {
			continue
		}
		seen[c.Text] = struct{}{}
		out = append(out, c)
	}
	return out
}

func fallbackSuggestions() []suggest.Suggestion {
	out := make([]suggest.Suggestion, 0, len(fallbackTasks))
	for _, t := range fallbackTasks {
		out = append(out, suggest.Suggestion{
			Text:       t,
			Category:   "general",
			Reason:     "General productivity",
			Confidence: genericConfidence,
		})
	}
	return out
}

// fillSlots replaces every known placeholder with a uniformly sampled value.
func (e *Engine) fillSlots(tmpl string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	for slot, vocab := range slotVocabulary {
		for strings.Contains(tmpl, slot) {
			tmpl = strings.Replace(tmpl, slot, vocab[e.intn(len(vocab))], 1)
		}
	}
	return tmpl
}

func (e *Engine) sample(pool []suggest.Suggestion, n int) []suggest.Suggestion {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	e.mu.Lock()
	perm := e.rng.Perm(len(pool))
	e.mu.Unlock()

	out := make([]suggest.Suggestion, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

func (e *Engine) sampleStrings(pool []string, n int) []string {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	e.mu.Lock()
	perm := e.rng.Perm(len(pool))
	e.mu.Unlock()

	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func timeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
