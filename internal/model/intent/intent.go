package intent

import (
	"encoding/json"
	"fmt"
	"os"
)

// Definition pairs an intent tag with the example phrases it is recognized by
// and the responses the assistant may answer with. Definitions are loaded once
// at startup and never mutated afterwards.
type Definition struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

type file struct {
	Intents []Definition `json:"intents"`
}

// Load reads intent definitions from the JSON file at path. An empty path
// yields the embedded defaults; a missing or malformed file is an error so a
// misconfigured deployment fails loudly at startup rather than classifying
// everything as unknown.
func Load(path string) ([]Definition, error) {
	if path == "" {
		return Seed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intents file: %w", err)
	}

	var parsed file
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse intents file: %w", err)
	}
	if len(parsed.Intents) == 0 {
		return nil, fmt.Errorf("intents file %s defines no intents", path)
	}
	return parsed.Intents, nil
}

// Seed provides the built-in intent set used when no intents file is configured.
func Seed() []Definition {
	return []Definition{
		{
			Tag:      "greeting",
			Patterns: []string{"hi", "hello", "hey", "good morning", "good evening", "hi there"},
			Responses: []string{
				"Hello! How can I help you with your productivity today?",
				"Hi there! What would you like to do?",
			},
		},
		{
			Tag:      "goodbye",
			Patterns: []string{"bye", "see you", "goodbye", "exit", "quit"},
			Responses: []string{
				"Goodbye!",
				"Have a great day!",
				"See you soon!",
			},
		},
		{
			Tag:      "add_task",
			Patterns: []string{"add task", "create task", "new task", "add a task", "create a new task", "remind me to"},
			Responses: []string{
				"Task added successfully",
				"I've added that task for you",
				"Your new task has been created",
			},
		},
		{
			Tag:      "create_habit",
			Patterns: []string{"track habit", "new habit", "create habit", "add habit", "start tracking"},
			Responses: []string{
				"Habit created successfully",
				"I'll help you track that habit",
				"Your new habit has been added",
			},
		},
		{
			Tag:      "list_tasks",
			Patterns: []string{"list tasks", "show tasks", "show my tasks", "what are my tasks", "my tasks today"},
			Responses: []string{
				"Here are your tasks",
				"These are the tasks I found",
			},
		},
		{
			Tag:      "help",
			Patterns: []string{"help", "what can you do", "how does this work"},
			Responses: []string{
				"You can ask me to add tasks, track habits, or list what's planned.",
				"Try something like \"remind me to call John tomorrow\".",
			},
		},
	}
}
