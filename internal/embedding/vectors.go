package embedding

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// VectorModel serves embeddings from a GloVe-style text file: one word per
// line followed by its space-separated components. The table is immutable
// after load, so concurrent reads need no locking.
type VectorModel struct {
	vectors map[string][]float64
	dims    int
}

// LoadVectors reads the vector file at path. Lines whose dimensionality does
// not match the first line are skipped rather than failing the whole load.
func LoadVectors(path string) (*VectorModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	m := &VectorModel{vectors: make(map[string][]float64)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		if m.dims == 0 {
			m.dims = len(fields) - 1
		}
		if len(fields)-1 != m.dims {
			continue
		}
		vec := make([]float64, m.dims)
		valid := true
		for i, raw := range fields[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				valid = false
				break
			}
			vec[i] = v
		}
		if valid {
			m.vectors[word] = vec
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vector file: %w", err)
	}
	if len(m.vectors) == 0 {
		return nil, fmt.Errorf("vector file %s contains no usable vectors", path)
	}
	return m, nil
}

// NewVectorModel wraps an in-memory word table, used by tests and seeds.
func NewVectorModel(vectors map[string][]float64) *VectorModel {
	dims := 0
	for _, v := range vectors {
		dims = len(v)
		break
	}
	return &VectorModel{vectors: vectors, dims: dims}
}

// Available reports whether any vectors were loaded.
func (m *VectorModel) Available() bool {
	return m != nil && len(m.vectors) > 0
}

// Size returns the vocabulary size.
func (m *VectorModel) Size() int {
	if m == nil {
		return 0
	}
	return len(m.vectors)
}

// Embed averages the vectors of the known words in text. Unknown words
// contribute nothing; text with no known word reports false.
func (m *VectorModel) Embed(_ context.Context, text string) ([]float64, bool) {
	if !m.Available() {
		return nil, false
	}
	words := strings.Fields(strings.ToLower(text))
	collected := make([][]float64, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"'()")
		if v, ok := m.vectors[w]; ok {
			collected = append(collected, v)
		}
	}
	return MeanVector(collected)
}
