package nlp

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmind/backend/internal/analysis/sentiment"
	"github.com/taskmind/backend/internal/embedding"
	"github.com/taskmind/backend/internal/model/intent"
	"github.com/taskmind/backend/internal/model/nlp"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
}

// testModel keeps each intent family on its own axis so pattern averages are
// exact: task words, habit words and listing words never bleed into each other.
func testModel() embedding.Model {
	return embedding.NewVectorModel(map[string][]float64{
		"add":   {1, 0, 0},
		"task":  {1, 0, 0},
		"track": {0, 1, 0},
		"habit": {0, 1, 0},
		"show":  {0, 0, 1},
		"list":  {0, 0, 1},
		"tasks": {0, 0, 1},
	})
}

func newTestService(t *testing.T, model embedding.Model, intents []intent.Definition) *Service {
	t.Helper()
	analyzer := sentiment.NewAnalyzer(context.Background(), model)
	return NewService(model, analyzer, intents, rand.New(rand.NewSource(1)), fixedClock)
}

func TestDetectIntentMatch(t *testing.T) {
	intents := []intent.Definition{
		{Tag: "greeting", Patterns: []string{"hello"}, Responses: []string{"Hi!"}},
	}
	svc := newTestService(t, testModel(), intents)

	res := svc.DetectIntent(context.Background(), "Hello")
	assert.Equal(t, "greeting", res.Tag)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Equal(t, "Hi!", res.Response)
}

func TestDetectIntentBelowThreshold(t *testing.T) {
	intents := []intent.Definition{
		{Tag: "greeting", Patterns: []string{"hello"}, Responses: []string{"Hi!"}},
	}
	svc := newTestService(t, testModel(), intents)

	res := svc.DetectIntent(context.Background(), "add stuff")
	assert.Equal(t, "unknown", res.Tag)
	assert.Equal(t, "I'm not sure what you want to do.", res.Response)
}

func TestDetectIntentUnavailableModel(t *testing.T) {
	svc := newTestService(t, embedding.Null{}, intent.Seed())

	res := svc.DetectIntent(context.Background(), "hello")
	assert.Equal(t, "unknown", res.Tag)
	assert.Zero(t, res.Confidence)
}

func TestDetectIntentDeterministicResponses(t *testing.T) {
	intents := []intent.Definition{
		{Tag: "greeting", Patterns: []string{"hello"}, Responses: []string{"a", "b", "c", "d"}},
	}
	first := newTestService(t, testModel(), intents)
	second := newTestService(t, testModel(), intents)

	for i := 0; i < 10; i++ {
		got := first.DetectIntent(context.Background(), "hello").Response
		want := second.DetectIntent(context.Background(), "hello").Response
		assert.Equal(t, want, got, "call %d", i)
	}
}

func TestParseCommandCreateTask(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	res := svc.ParseCommand(context.Background(), "add task call John tomorrow high priority")
	assert.Equal(t, "add_task", res.Intent)
	assert.Equal(t, nlp.ActionCreateTask, res.Action)
	assert.InDelta(t, 5.0/6.0, res.Confidence, 1e-9)
	assert.Equal(t, []string{"2026-08-31"}, res.Entities[nlp.EntityDate])

	task, ok := res.Data.(nlp.TaskData)
	require.True(t, ok, "expected TaskData, got %T", res.Data)
	assert.Equal(t, "priority", task.Title)
	assert.Equal(t, "high", task.Priority)
	assert.Equal(t, "call", task.Category)
	assert.Equal(t, "2026-08-31", task.DueDate)
	assert.Equal(t, "Adding task: priority", res.Response)
}

func TestParseCommandTimeOnlyDueDate(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	res := svc.ParseCommand(context.Background(), "add task review notes at 3pm")
	task, ok := res.Data.(nlp.TaskData)
	require.True(t, ok, "expected TaskData, got %T", res.Data)
	assert.Equal(t, "2026-08-30T3pm", task.DueDate)
}

func TestParseCommandCreateHabit(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	res := svc.ParseCommand(context.Background(), "track habit drink water")
	assert.Equal(t, "create_habit", res.Intent)
	assert.Equal(t, nlp.ActionCreateHabit, res.Action)

	habit, ok := res.Data.(nlp.HabitData)
	require.True(t, ok, "expected HabitData, got %T", res.Data)
	assert.Equal(t, "drink water", habit.Name)
	assert.Empty(t, habit.Category)
	assert.Equal(t, "Creating habit: drink water", res.Response)
}

func TestParseCommandListTasks(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	res := svc.ParseCommand(context.Background(), "show my tasks today")
	assert.Equal(t, "list_tasks", res.Intent)
	assert.Equal(t, nlp.ActionListTasks, res.Action)
	assert.Equal(t, "Here are your tasks", res.Response)

	list, ok := res.Data.(nlp.ListData)
	require.True(t, ok, "expected ListData, got %T", res.Data)
	assert.Equal(t, "2026-08-30", list.Date)
	assert.Empty(t, list.Category)
}

func TestParseCommandEmptyInput(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	res := svc.ParseCommand(context.Background(), "   ")
	assert.Equal(t, "unknown", res.Intent)
	assert.Equal(t, nlp.ActionNone, res.Action)
	assert.Equal(t, "I couldn't process that command.", res.Response)
	_, ok := res.Data.(nlp.EmptyData)
	assert.True(t, ok, "expected EmptyData, got %T", res.Data)
}

func TestParseCommandUnavailableModel(t *testing.T) {
	svc := newTestService(t, embedding.Null{}, intent.Seed())

	res := svc.ParseCommand(context.Background(), "add task call John")
	assert.Equal(t, "unknown", res.Intent)
	assert.Equal(t, nlp.ActionNone, res.Action)
}

func TestAnalyzeTextDegrades(t *testing.T) {
	svc := newTestService(t, embedding.Null{}, intent.Seed())

	analysis := svc.AnalyzeText(context.Background(), "add task call John")
	assert.NotNil(t, analysis.Tokens)
	assert.Empty(t, analysis.Tokens)
	assert.Empty(t, analysis.Entities)
	assert.Equal(t, nlp.SentimentNeutral, analysis.Sentiment)
}

func TestAnalyzeTextTokens(t *testing.T) {
	svc := newTestService(t, testModel(), intent.Seed())

	analysis := svc.AnalyzeText(context.Background(), "Call John tomorrow. Review notes.")
	assert.NotEmpty(t, analysis.Tokens)
	assert.Len(t, analysis.Sentences, 2)

	foundDate := false
	for _, ent := range analysis.Entities {
		if ent.Type == nlp.EntityDate && ent.Text == "tomorrow" {
			foundDate = true
		}
	}
	assert.True(t, foundDate, "expected a tomorrow date span, got %v", analysis.Entities)
}

func TestExtractEntitiesGated(t *testing.T) {
	svc := newTestService(t, embedding.Null{}, intent.Seed())
	assert.Empty(t, svc.ExtractEntities(context.Background(), "meet John tomorrow"))

	svc = newTestService(t, testModel(), intent.Seed())
	entities := svc.ExtractEntities(context.Background(), "meet John tomorrow")
	assert.Equal(t, []string{"2026-08-31"}, entities[nlp.EntityDate])
	assert.Equal(t, []string{"John"}, entities[nlp.EntityPerson])
}
