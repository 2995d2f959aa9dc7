// Package text implements the lexical feature extractor underlying entity
// extraction, intent matching and sentiment scoring: tokens with lemma and
// coarse part-of-speech tags, sentence boundaries, and noun-phrase spans.
package text

import (
	"strings"
	"unicode"

	"github.com/taskmind/backend/internal/model/nlp"
)

// Features is everything the extractor derives from one text.
type Features struct {
	Tokens     []nlp.Token
	Sentences  []string
	NounChunks []string
}

// Extract tokenizes text and derives sentences and noun chunks. It never
// fails: empty or unusable input yields empty slices, which downstream
// components treat as "no information extractable".
func Extract(text string) Features {
	tokens := Tokenize(text)
	return Features{
		Tokens:     tokens,
		Sentences:  splitSentences(text),
		NounChunks: nounChunks(tokens),
	}
}

// Tokenize splits text into word and punctuation tokens in source order.
func Tokenize(text string) []nlp.Token {
	var tokens []nlp.Token
	var current strings.Builder
	sentenceStart := true

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		tokens = append(tokens, wordToken(word, sentenceStart))
		sentenceStart = false
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, nlp.Token{Text: string(r), Lemma: string(r), POS: "PUNCT"})
			if r == '.' || r == '!' || r == '?' {
				sentenceStart = true
			}
		}
	}
	flush()
	return tokens
}

func wordToken(word string, sentenceStart bool) nlp.Token {
	lower := strings.ToLower(word)
	tok := nlp.Token{
		Text:   word,
		Lemma:  Lemma(lower),
		IsStop: IsStopword(lower),
	}
	tok.POS = tagPOS(word, lower, sentenceStart, tok.IsStop)
	return tok
}

func tagPOS(word, lower string, sentenceStart, isStop bool) string {
	switch {
	case isNumeric(lower):
		return "NUM"
	case isStop:
		// Close enough for the pipeline: stopwords are function words.
		return "DET"
	case !sentenceStart && word != lower && unicode.IsUpper([]rune(word)[0]):
		return "PROPN"
	case strings.HasSuffix(lower, "ing") || strings.HasSuffix(lower, "ize") || isCommonVerb(lower):
		return "VERB"
	case strings.HasSuffix(lower, "ly"):
		return "ADV"
	case strings.HasSuffix(lower, "ful") || strings.HasSuffix(lower, "ous") || strings.HasSuffix(lower, "ive"):
		return "ADJ"
	default:
		return "NOUN"
	}
}

var commonVerbs = map[string]struct{}{
	"add": {}, "create": {}, "make": {}, "remind": {}, "call": {}, "buy": {},
	"schedule": {}, "review": {}, "finish": {}, "complete": {}, "track": {},
	"check": {}, "send": {}, "write": {}, "read": {}, "plan": {}, "go": {},
	"list": {}, "show": {}, "delete": {}, "update": {}, "start": {}, "stop": {},
}

func isCommonVerb(word string) bool {
	_, ok := commonVerbs[word]
	return ok
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '.' && r != ':' && r != '-' {
			return false
		}
	}
	return word != ""
}

// Lemma applies light suffix stripping, enough to line tokens up with the
// lexicon seed words.
func Lemma(lower string) string {
	switch {
	case strings.HasSuffix(lower, "'s"):
		return strings.TrimSuffix(lower, "'s")
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return strings.TrimSuffix(lower, "ies") + "y"
	case strings.HasSuffix(lower, "sses"):
		return strings.TrimSuffix(lower, "es")
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		return strings.TrimSuffix(lower, "s")
	default:
		return lower
	}
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// nounChunks groups consecutive adjective/noun runs ending in a noun, an
// approximation of noun-phrase spans.
func nounChunks(tokens []nlp.Token) []string {
	var chunks []string
	var run []string
	lastPOS := ""
	flush := func() {
		// A run that never reached a noun is dropped.
		if len(run) > 0 && (lastPOS == "NOUN" || lastPOS == "PROPN") {
			chunks = append(chunks, strings.Join(run, " "))
		}
		run = nil
		lastPOS = ""
	}
	for _, tok := range tokens {
		switch tok.POS {
		case "NOUN", "PROPN", "ADJ", "NUM":
			run = append(run, tok.Text)
			lastPOS = tok.POS
		default:
			flush()
		}
	}
	flush()
	return chunks
}
