package nlp

import (
	"context"
	"log"
	"strings"

	"github.com/taskmind/backend/internal/analysis/entity"
	"github.com/taskmind/backend/internal/model/nlp"
)

// Trigger phrase fallbacks used when the intent set does not define the tag.
var (
	taskTriggerPhrases  = []string{"add task", "create task", "new task", "add a task", "create a new task", "remind me to"}
	habitTriggerPhrases = []string{"track habit", "new habit", "create habit", "add habit", "start tracking"}
)

// ParseCommand classifies input, extracts entities and shapes the
// action-specific payload. It never lets an internal fault reach the caller:
// anything unexpected surfaces as the unknown/none result.
func (s *Service) ParseCommand(ctx context.Context, input string) (result nlp.CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[nlp] command parse panic recovered: %v", r)
			result = unknownCommand(internalErrorResponse)
		}
	}()

	if !s.modelAvailable() || strings.TrimSpace(input) == "" {
		return unknownCommand(processFailedResponse)
	}

	detected := s.DetectIntent(ctx, input)
	extraction := s.extractor.Extract(input)

	result = nlp.CommandResult{
		Intent:     detected.Tag,
		Confidence: detected.Confidence,
		Action:     nlp.ActionNone,
		Response:   detected.Response,
		Entities:   extraction.ByType,
		Data:       nlp.EmptyData{},
	}

	switch detected.Tag {
	case "add_task":
		task := s.taskData(input, extraction)
		result.Action = nlp.ActionCreateTask
		result.Response = "Adding task: " + task.Title
		result.Data = task
	case "create_habit":
		habit := s.habitData(input, extraction)
		result.Action = nlp.ActionCreateHabit
		result.Response = "Creating habit: " + habit.Name
		result.Data = habit
	case "list_tasks":
		result.Action = nlp.ActionListTasks
		result.Response = "Here are your tasks"
		result.Data = nlp.ListData{
			Date:     first(extraction.ByType[nlp.EntityDate]),
			Category: first(extraction.ByType[nlp.EntityCategory]),
		}
	}
	return result
}

func unknownCommand(response string) nlp.CommandResult {
	return nlp.CommandResult{
		Intent:     "unknown",
		Confidence: 0,
		Action:     nlp.ActionNone,
		Response:   response,
		Entities:   nlp.EntityMap{},
		Data:       nlp.EmptyData{},
	}
}

// taskData builds the create_task payload: the title is the input with every
// matched entity surface form and every trigger phrase stripped, falling back
// to the original text when stripping empties it.
func (s *Service) taskData(input string, extraction entity.Result) nlp.TaskData {
	task := nlp.TaskData{
		Title:    cleanTitle(input, extraction, s.triggerPhrases("add_task", taskTriggerPhrases)),
		Priority: strings.ToLower(first(extraction.Surface[nlp.EntityPriority])),
		Category: strings.ToLower(first(extraction.Surface[nlp.EntityCategory])),
	}

	dates := extraction.ByType[nlp.EntityDate]
	times := extraction.ByType[nlp.EntityTime]
	switch {
	case len(dates) > 0 && len(times) > 0:
		task.DueDate = dates[0] + "T" + times[0]
	case len(dates) > 0:
		task.DueDate = dates[0]
	case len(times) > 0:
		task.DueDate = s.now().Format("2006-01-02") + "T" + times[0]
	}
	return task
}

// habitData builds the create_habit payload with the same stripping logic.
func (s *Service) habitData(input string, extraction entity.Result) nlp.HabitData {
	return nlp.HabitData{
		Name:     cleanTitle(input, extraction, s.triggerPhrases("create_habit", habitTriggerPhrases)),
		Category: strings.ToLower(first(extraction.Surface[nlp.EntityCategory])),
	}
}

// triggerPhrases prefers the configured intent's patterns so custom intent
// files strip their own phrasing.
func (s *Service) triggerPhrases(tag string, fallback []string) []string {
	for _, def := range s.intents {
		if def.Tag == tag && len(def.Patterns) > 0 {
			return def.Patterns
		}
	}
	return fallback
}

func cleanTitle(input string, extraction entity.Result, triggers []string) string {
	title := input
	for _, values := range extraction.Surface {
		for _, v := range values {
			title = removeFold(title, v)
		}
	}
	for _, phrase := range triggers {
		title = removeFold(title, phrase)
	}
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return strings.TrimSpace(input)
	}
	return title
}

// removeFold removes every case-insensitive occurrence of phrase from s.
func removeFold(s, phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return s
	}
	lowerPhrase := strings.ToLower(phrase)
	for {
		i := strings.Index(strings.ToLower(s), lowerPhrase)
		if i < 0 {
			return s
		}
		s = s[:i] + s[i+len(phrase):]
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
