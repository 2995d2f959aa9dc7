package intent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathUsesSeeds(t *testing.T) {
	defs, err := Load("")
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected seed definitions")
	}

	tags := map[string]bool{}
	for _, def := range defs {
		tags[def.Tag] = true
		if len(def.Patterns) == 0 || len(def.Responses) == 0 {
			t.Fatalf("seed %q missing patterns or responses", def.Tag)
		}
	}
	for _, tag := range []string{"greeting", "add_task", "create_habit", "list_tasks"} {
		if !tags[tag] {
			t.Fatalf("seed set missing %q", tag)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	content := `{"intents":[{"tag":"greeting","patterns":["hi"],"responses":["Hello!"]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	defs, err := Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(defs) != 1 || defs[0].Tag != "greeting" {
		t.Fatalf("unexpected definitions: %+v", defs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestLoadEmptyIntentList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	if err := os.WriteFile(path, []byte(`{"intents":[]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty intent list")
	}
}
