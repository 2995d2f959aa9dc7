package suggest

// Suggestion is one ranked task candidate returned to a caller. Lists handed
// out by the engine never contain two entries with the same Text.
type Suggestion struct {
	Text       string  `json:"text"`
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// Context carries optional situational hints for suggestion generation.
// Recognized keys: location, activity, project, mood.
type Context map[string]string

// Get returns the value for key, tolerating a nil context.
func (c Context) Get(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}
