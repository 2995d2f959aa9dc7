package text

// English stopword list, close to the set spoken-command traffic actually
// hits. Membership feeds Token.IsStop and the sentiment token filter.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to", "from",
		"up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "once", "here", "there", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "can", "will",
		"just", "should", "now", "i", "me", "my", "myself", "we", "our",
		"ours", "ourselves", "you", "your", "yours", "yourself", "he", "him",
		"his", "himself", "she", "her", "hers", "herself", "it", "its",
		"itself", "they", "them", "their", "theirs", "themselves", "what",
		"which", "who", "whom", "this", "that", "these", "those", "am", "is",
		"are", "was", "were", "be", "been", "being", "have", "has", "had",
		"having", "do", "does", "did", "doing", "would", "could", "ought",
		"of", "as", "until", "while", "because", "how", "why", "where",
		"please", "ok", "okay",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the lowercased word is in the stopword list.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
