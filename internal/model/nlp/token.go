package nlp

// Token is a single analyzed word or punctuation mark, scoped to one request.
type Token struct {
	Text   string `json:"text"`
	Lemma  string `json:"lemma"`
	POS    string `json:"pos"`
	IsStop bool   `json:"is_stop"`
}

// Analysis bundles the linguistic features extracted from one text.
type Analysis struct {
	Tokens     []Token  `json:"tokens"`
	Entities   []Entity `json:"entities"`
	Sentences  []string `json:"sentences"`
	NounChunks []string `json:"noun_chunks"`
	Sentiment  string   `json:"sentiment"`
}
