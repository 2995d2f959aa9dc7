package embedding

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCosine(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{1, 0}); got < 0.999 {
		t.Fatalf("identical vectors should score 1, got %f", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("orthogonal vectors should score 0, got %f", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{1, 0, 0}); got != 0 {
		t.Fatalf("mismatched lengths should score 0, got %f", got)
	}
	if got := Cosine(nil, nil); got != 0 {
		t.Fatalf("empty vectors should score 0, got %f", got)
	}
}

func TestTextSimilarityIdenticalText(t *testing.T) {
	// Identity holds even without a model.
	if got := TextSimilarity(context.Background(), Null{}, "Hello", " hello "); got != 1 {
		t.Fatalf("identical normalized text should score 1, got %f", got)
	}
}

func TestTextSimilarityClampsNegative(t *testing.T) {
	m := NewVectorModel(map[string][]float64{
		"up":   {1, 0},
		"down": {-1, 0},
	})
	if got := TextSimilarity(context.Background(), m, "up", "down"); got != 0 {
		t.Fatalf("opposed vectors should clamp to 0, got %f", got)
	}
}

func TestTextSimilarityUnavailableModel(t *testing.T) {
	if got := TextSimilarity(context.Background(), Null{}, "hello", "hi"); got != 0 {
		t.Fatalf("unavailable model should score 0, got %f", got)
	}
}

func TestLoadVectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	content := "hello 1.0 0.0\nworld 0.0 1.0\nbroken not-a-number 0.0\nshort 1.0 2.0 3.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := LoadVectors(path)
	if err != nil {
		t.Fatalf("LoadVectors err: %v", err)
	}
	if m.Size() != 2 {
		t.Fatalf("expected 2 usable vectors, got %d", m.Size())
	}
	if !m.Available() {
		t.Fatal("model with vectors should be available")
	}

	vec, ok := m.Embed(context.Background(), "hello world")
	if !ok {
		t.Fatal("expected embedding for known words")
	}
	if vec[0] != 0.5 || vec[1] != 0.5 {
		t.Fatalf("expected mean vector [0.5 0.5], got %v", vec)
	}

	if _, ok := m.Embed(context.Background(), "unknown words only"); ok {
		t.Fatal("expected no embedding for out-of-vocabulary text")
	}
}

func TestLoadVectorsMissingFile(t *testing.T) {
	if _, err := LoadVectors(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMeanVector(t *testing.T) {
	mean, ok := MeanVector([][]float64{{2, 0}, nil, {0, 2}})
	if !ok {
		t.Fatal("expected mean from non-empty inputs")
	}
	if mean[0] != 1 || mean[1] != 1 {
		t.Fatalf("expected [1 1], got %v", mean)
	}

	if _, ok := MeanVector(nil); ok {
		t.Fatal("expected no mean from empty input")
	}
}
