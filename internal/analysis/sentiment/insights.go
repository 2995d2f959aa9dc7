package sentiment

import (
	"context"

	"github.com/taskmind/backend/internal/model/nlp"
)

// Insights derives coaching observations and advice from a text's mood
// signal. It layers on top of Analyze and shares its degradation behavior.
func (a *Analyzer) Insights(ctx context.Context, input string) nlp.Insights {
	analysis := a.Analyze(ctx, input)

	out := nlp.Insights{
		Insights:    []string{},
		Suggestions: []string{},
		Mood:        analysis.Mood,
	}

	switch analysis.Mood.Motivation {
	case nlp.MoodLow:
		out.Insights = append(out.Insights, "You seem to be feeling unmotivated right now.")
		out.Suggestions = append(out.Suggestions,
			"Consider breaking your tasks into smaller, manageable chunks.",
			"Take a short break and do something you enjoy to reset your mindset.")
	case nlp.MoodHigh:
		out.Insights = append(out.Insights, "You're feeling motivated and ready to tackle challenges.")
		out.Suggestions = append(out.Suggestions, "Channel this energy into your most important or difficult tasks.")
	}

	switch analysis.Mood.Productivity {
	case nlp.MoodLow:
		out.Insights = append(out.Insights, "You may be feeling unproductive or inefficient.")
		out.Suggestions = append(out.Suggestions,
			"Try the Pomodoro technique: 25 minutes of focused work followed by a 5 minute break.",
			"Minimize distractions in your environment.")
	case nlp.MoodHigh:
		out.Insights = append(out.Insights, "You're in a productive state of mind.")
		out.Suggestions = append(out.Suggestions, "Keep up the momentum by continuing to check off tasks on your list.")
	}

	switch analysis.Mood.Stress {
	case nlp.MoodHigh:
		out.Insights = append(out.Insights, "You appear to be experiencing stress or feeling overwhelmed.")
		out.Suggestions = append(out.Suggestions,
			"Practice deep breathing or a quick meditation to reduce stress.",
			"Prioritize your tasks and focus on one thing at a time.")
	case nlp.MoodLow:
		out.Insights = append(out.Insights, "You seem relaxed and at ease.")
		out.Suggestions = append(out.Suggestions, "This is a good state for creative thinking and planning.")
	}

	if analysis.Emotions["joy"] > 0.6 {
		out.Insights = append(out.Insights, "Your positive mood can enhance creativity and problem-solving.")
	} else if analysis.Emotions["sadness"] > 0.6 {
		out.Insights = append(out.Insights, "You might be feeling down, which can impact focus and motivation.")
		out.Suggestions = append(out.Suggestions, "Set small, achievable goals to build momentum and boost your mood.")
	}

	return out
}
