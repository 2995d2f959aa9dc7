// Package entity extracts typed spans from free-form text. Two strategies
// contribute: a heuristic recognizer for dates, times, people, organizations
// and locations, and a closed-vocabulary matcher for priorities, categories
// and duration units. Their results are merged per type in first-seen order.
package entity

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/taskmind/backend/internal/model/nlp"
)

// Result carries both views of one extraction pass: the raw spans (for
// analysis output and command-title stripping) and the per-type value map
// with relative dates normalized.
type Result struct {
	Spans   []nlp.Entity
	ByType  nlp.EntityMap
	Surface nlp.EntityMap
}

// Extractor recognizes productivity-domain entities. The clock is injectable
// so relative-date normalization is deterministic under test.
type Extractor struct {
	now func() time.Time
}

// NewExtractor builds an extractor; a nil clock defaults to time.Now.
func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{now: now}
}

var (
	priorityTerms = []string{"high", "medium", "low", "urgent", "critical", "normal"}
	categoryTerms = []string{"work", "personal", "health", "finance", "education", "family", "project", "meeting", "call"}
	durationTerms = []string{"minute", "hour", "day", "week", "month", "year"}

	isoDateRe   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashDateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	clockTimeRe = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s?(?:am|pm)?\b|\b\d{1,2}\s?(?:am|pm)\b`)
	wordRe      = regexp.MustCompile(`[A-Za-z][A-Za-z'-]*`)

	relativeDates = []string{"today", "tomorrow", "tonight", "yesterday"}
	weekdays      = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	months        = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

	locationCues = map[string]struct{}{"in": {}, "at": {}, "near": {}, "from": {}}
	orgSuffixes  = []string{"inc", "corp", "llc", "ltd", "co"}
)

type match struct {
	entity nlp.Entity
}

// Extract runs both strategies over text and merges their matches. Empty text
// yields an empty result; the method itself never fails.
func (e *Extractor) Extract(text string) Result {
	res := Result{ByType: nlp.EntityMap{}, Surface: nlp.EntityMap{}}
	if strings.TrimSpace(text) == "" {
		return res
	}

	var matches []match
	claimed := map[[2]int]struct{}{}

	matches = append(matches, e.recognize(text, claimed)...)
	matches = append(matches, e.matchVocabulary(text)...)

	// First-seen order within each type follows span order in the text for
	// each strategy, recognizer results first.
	seen := map[string]struct{}{}
	for _, m := range matches {
		key := spanKey(m.entity)
		if _, dup := seen[key]; dup {
			// Same span reported twice (for the same type) collapses to one.
			continue
		}
		seen[key] = struct{}{}
		res.Spans = append(res.Spans, m.entity)
		res.Surface[m.entity.Type] = append(res.Surface[m.entity.Type], m.entity.Text)
		res.ByType[m.entity.Type] = append(res.ByType[m.entity.Type], e.normalize(m.entity))
	}
	return res
}

func spanKey(ent nlp.Entity) string {
	return ent.Type + "\x00" + strconv.Itoa(ent.Start) + ":" + strconv.Itoa(ent.End)
}

// normalize maps relative date literals onto absolute calendar dates. All
// other values pass through unmodified; no general date parsing is attempted.
func (e *Extractor) normalize(ent nlp.Entity) string {
	if ent.Type != nlp.EntityDate {
		return ent.Text
	}
	switch strings.ToLower(ent.Text) {
	case "today", "tonight":
		return e.now().Format("2006-01-02")
	case "tomorrow":
		return e.now().AddDate(0, 0, 1).Format("2006-01-02")
	default:
		return ent.Text
	}
}

// recognize finds date, time, person, organization and location spans.
// Claimed spans keep a weekday from doubling as a person name.
func (e *Extractor) recognize(text string, claimed map[[2]int]struct{}) []match {
	var found []match
	add := func(start, end int, typ string) {
		for span := range claimed {
			if start < span[1] && end > span[0] {
				return
			}
		}
		claimed[[2]int{start, end}] = struct{}{}
		found = append(found, match{entity: nlp.Entity{
			Text:  text[start:end],
			Type:  typ,
			Start: start,
			End:   end,
		}})
	}

	for _, idx := range isoDateRe.FindAllStringIndex(text, -1) {
		add(idx[0], idx[1], nlp.EntityDate)
	}
	for _, idx := range slashDateRe.FindAllStringIndex(text, -1) {
		add(idx[0], idx[1], nlp.EntityDate)
	}
	for _, idx := range clockTimeRe.FindAllStringIndex(text, -1) {
		add(idx[0], idx[1], nlp.EntityTime)
	}

	words := wordRe.FindAllStringIndex(text, -1)
	for i, idx := range words {
		word := text[idx[0]:idx[1]]
		lower := strings.ToLower(word)

		if containsWord(relativeDates, lower) || containsWord(weekdays, lower) || containsWord(months, lower) {
			add(idx[0], idx[1], nlp.EntityDate)
			continue
		}
		if lower == "noon" || lower == "midnight" {
			add(idx[0], idx[1], nlp.EntityTime)
			continue
		}

		if !isCapitalized(word) || sentenceInitial(text, idx[0]) {
			continue
		}
		prev := ""
		if i > 0 {
			prev = strings.ToLower(text[words[i-1][0]:words[i-1][1]])
		}
		next := ""
		if i+1 < len(words) {
			next = strings.ToLower(text[words[i+1][0]:words[i+1][1]])
		}
		_, afterLocationCue := locationCues[prev]
		switch {
		case isAllCaps(word) || containsWord(orgSuffixes, next):
			add(idx[0], idx[1], nlp.EntityOrganization)
		case afterLocationCue:
			add(idx[0], idx[1], nlp.EntityLocation)
		default:
			add(idx[0], idx[1], nlp.EntityPerson)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].entity.Start < found[j].entity.Start
	})
	return found
}

// matchVocabulary applies the closed-vocabulary phrase matcher.
func (e *Extractor) matchVocabulary(text string) []match {
	lower := strings.ToLower(text)
	var found []match
	collect := func(terms []string, typ string, allowPlural bool) {
		for _, term := range terms {
			for _, idx := range wordBoundaryMatches(lower, term, allowPlural) {
				found = append(found, match{entity: nlp.Entity{
					Text:  text[idx[0]:idx[1]],
					Type:  typ,
					Start: idx[0],
					End:   idx[1],
				}})
			}
		}
	}
	collect(priorityTerms, nlp.EntityPriority, false)
	collect(categoryTerms, nlp.EntityCategory, false)
	collect(durationTerms, nlp.EntityDuration, true)

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].entity.Type != found[j].entity.Type {
			return found[i].entity.Type < found[j].entity.Type
		}
		return found[i].entity.Start < found[j].entity.Start
	})
	return found
}

func wordBoundaryMatches(lower, term string, allowPlural bool) [][2]int {
	var out [][2]int
	offset := 0
	for {
		i := strings.Index(lower[offset:], term)
		if i < 0 {
			return out
		}
		start := offset + i
		end := start + len(term)
		if allowPlural && end < len(lower) && lower[end] == 's' {
			end++
		}
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			out = append(out, [2]int{start, end})
		}
		offset = start + len(term)
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b == '\'' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func containsWord(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}

func isCapitalized(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

func isAllCaps(word string) bool {
	if len(word) < 2 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// sentenceInitial reports whether the word starting at offset opens the text
// or follows sentence-ending punctuation.
func sentenceInitial(text string, offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c == '.' || c == '!' || c == '?':
			return true
		default:
			return false
		}
	}
	return true
}
