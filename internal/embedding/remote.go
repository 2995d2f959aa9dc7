package embedding

import (
	"context"
	"log"
	"strings"
	"sync"

	einoembedding "github.com/cloudwego/eino/components/embedding"
)

// RemoteModel adapts an eino embedder (Ark in production) to the Model
// interface. Lookups are cached per normalized text since the analyzers ask
// for the same lexicon words over and over.
type RemoteModel struct {
	embedder einoembedding.Embedder
	cache    sync.Map // string -> []float64
}

// NewRemoteModel wraps an eino embedder. A nil embedder yields an unavailable
// model rather than an error so wiring stays uniform.
func NewRemoteModel(embedder einoembedding.Embedder) *RemoteModel {
	return &RemoteModel{embedder: embedder}
}

// Available reports whether a backend embedder is configured.
func (m *RemoteModel) Available() bool {
	return m != nil && m.embedder != nil
}

// Embed fetches (or serves from cache) the vector for text. Backend errors
// degrade to "no vector" — the pipeline's documented neutral defaults cover
// the rest.
func (m *RemoteModel) Embed(ctx context.Context, text string) ([]float64, bool) {
	if !m.Available() {
		return nil, false
	}
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return nil, false
	}
	if cached, ok := m.cache.Load(key); ok {
		vec := cached.([]float64)
		return vec, len(vec) > 0
	}

	vectors, err := m.embedder.EmbedStrings(ctx, []string{key})
	if err != nil || len(vectors) == 0 || len(vectors[0]) == 0 {
		if err != nil {
			log.Printf("[embedding] remote embed failed for %q: %v", key, err)
		}
		// Negative result is cached too: a word the backend cannot embed now
		// will not embed on the next request either.
		m.cache.Store(key, []float64(nil))
		return nil, false
	}

	m.cache.Store(key, vectors[0])
	return vectors[0], true
}
