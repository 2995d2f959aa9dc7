package nlp

// Actions a parsed command can resolve to.
const (
	ActionCreateTask  = "create_task"
	ActionCreateHabit = "create_habit"
	ActionListTasks   = "list_tasks"
	ActionNone        = "none"
)

// Payload is the closed set of action-specific data shapes. Each action has a
// statically known variant so callers can switch exhaustively instead of
// probing a free-form map.
type Payload interface {
	isPayload()
}

// TaskData is the payload for create_task.
type TaskData struct {
	Title    string `json:"title"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
}

// HabitData is the payload for create_habit.
type HabitData struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ListData is the payload for list_tasks.
type ListData struct {
	Date     string `json:"date,omitempty"`
	Category string `json:"category,omitempty"`
}

// EmptyData is the payload for unresolved commands.
type EmptyData struct{}

func (TaskData) isPayload()  {}
func (HabitData) isPayload() {}
func (ListData) isPayload()  {}
func (EmptyData) isPayload() {}

// CommandResult is the orchestrator's answer to one free-form command.
type CommandResult struct {
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Action     string    `json:"action"`
	Response   string    `json:"response"`
	Entities   EntityMap `json:"entities"`
	Data       Payload   `json:"data"`
}
