package suggest

// Task template pools per category. Placeholders in braces are filled from
// the slot vocabularies below.
var categoryTasks = map[string][]string{
	"work": {
		"Review {document} report",
		"Schedule meeting with {person}",
		"Prepare presentation for {project}",
		"Follow up on {project} project",
		"Update {document} documentation",
		"Complete {project} tasks",
		"Respond to emails about {project}",
		"Call {person} regarding {project}",
		"Review budget for {project}",
		"Submit expense report",
	},
	"personal": {
		"Call {person}",
		"Buy {item} from grocery store",
		"Pay {bill} bill",
		"Schedule appointment with {person}",
		"Plan weekend activities",
		"Buy gift for {person}'s birthday",
		"Organize {room} closet",
		"Research {topic} online",
		"Renew {document} subscription",
		"Check in with {person}",
	},
	"health": {
		"Go for a {duration} run",
		"Schedule {type} doctor appointment",
		"Take medication",
		"Drink water",
		"Prepare healthy meals",
		"Go to gym",
		"Do {duration} yoga session",
		"Meditate for {duration}",
		"Get {duration} of sleep",
		"Track daily water intake",
	},
	"learning": {
		"Study {topic} for {duration}",
		"Take online course on {topic}",
		"Read {book} book",
		"Watch tutorial on {topic}",
		"Practice {skill} for {duration}",
		"Review notes on {topic}",
		"Research {topic} online",
		"Attend webinar on {topic}",
		"Complete {topic} assignment",
		"Learn about {topic}",
	},
	"home": {
		"Clean {room}",
		"Do laundry",
		"Wash dishes",
		"Water plants",
		"Take out trash",
		"Vacuum {room}",
		"Fix {item} in {room}",
		"Organize {room}",
		"Mow lawn",
		"Pick up groceries",
	},
}

// Day-specific generic calendar, used when a profile has no mapping for the
// current weekday.
var dayTasks = map[string][]string{
	"Monday": {
		"Plan weekly goals",
		"Review weekly schedule",
		"Check emails from weekend",
		"Follow up on pending items",
		"Team meeting preparation",
	},
	"Tuesday": {
		"Follow up on Monday's meetings",
		"Continue work on weekly goals",
		"Mid-week planning check-in",
		"Send progress updates",
	},
	"Wednesday": {
		"Mid-week review",
		"Check in on weekly goals progress",
		"Organize workspace",
		"Follow up on ongoing projects",
	},
	"Thursday": {
		"Prepare for Friday's meetings",
		"Follow up on pending responses",
		"Begin preparing weekly summary",
		"Finalize remaining weekly deliverables",
	},
	"Friday": {
		"Submit weekly report",
		"Plan for next week",
		"Clear inbox before weekend",
		"Review weekly accomplishments",
		"Set Monday priorities",
	},
	"Saturday": {
		"Weekly grocery shopping",
		"Home cleaning",
		"Personal errands",
		"Relax and recharge",
		"Social activities",
	},
	"Sunday": {
		"Prepare meals for the week",
		"Review calendar for upcoming week",
		"Set goals for the week",
		"Rest and recharge",
		"Light organization for the week ahead",
	},
}

// Time-of-day buckets.
var timeTasks = map[string][]string{
	"morning": {
		"Check emails",
		"Review daily schedule",
		"Set daily priorities",
		"Morning exercise",
		"Team stand-up meeting",
		"Respond to urgent messages",
	},
	"afternoon": {
		"Follow up on morning tasks",
		"Work on primary projects",
		"Check-in with team members",
		"Schedule for tomorrow",
		"Return phone calls",
		"Afternoon break and stretching",
	},
	"evening": {
		"Wrap up daily tasks",
		"Prepare for tomorrow",
		"Review accomplishments",
		"Evening exercise",
		"Personal reading time",
		"Relaxation activities",
	},
}

// Context-derived pools.
var (
	homeTasks = []string{
		"Organize your workspace",
		"Check home inventory",
		"Water plants",
	}
	officeTasks = []string{
		"Schedule team check-in",
		"Update project status",
		"Prepare for upcoming meetings",
	}
	travelTasks = []string{
		"Check travel itinerary",
		"Confirm reservations",
		"Pack essentials",
	}
	focusBreakTasks = []string{
		"Take a short break",
		"Drink water",
		"Stretch for 5 minutes",
	}
	meetingTasks = []string{
		"Follow up on action items",
		"Send meeting notes",
		"Schedule follow-up meeting if needed",
	}
	restTasks = []string{
		"Take a 10 minute walk",
		"Do a short breathing exercise",
		"Step away from the screen for a bit",
	}
	priorityWorkTasks = []string{
		"Tackle your hardest task now",
		"Work on your top priority project",
		"Clear one important item off your list",
	}
)

// genericTasks backfills the result when the other stages come up short.
var genericTasks = []string{
	"Check and respond to emails",
	"Review your calendar",
	"Update your to-do list",
	"Take a short break",
	"Drink water",
	"Stretch for 5 minutes",
	"Reflect on your progress",
	"Set goals for tomorrow",
	"Organize your workspace",
	"Review your goals",
	"Follow up on pending items",
	"Check in with team members",
	"Schedule important meetings",
	"Review project deadlines",
	"Back up important files",
}

// fallbackTasks is the fixed answer when suggestion generation itself fails.
var fallbackTasks = []string{
	"Check email",
	"Review calendar",
	"Work on current project",
}

// Slot vocabularies for template placeholders.
var slotVocabulary = map[string][]string{
	"{document}": {"quarterly", "project", "annual", "budget"},
	"{person}":   {"team", "manager", "client", "colleague"},
	"{project}":  {"marketing", "development", "research", "design"},
	"{duration}": {"30 minute", "1 hour", "15 minute", "45 minute"},
	"{topic}":    {"Python", "marketing", "project management", "design"},
	"{type}":     {"dental", "medical", "therapy", "wellness"},
	"{room}":     {"living room", "bedroom", "kitchen", "office"},
	"{item}":     {"lamp", "chair", "table", "appliance"},
	"{bill}":     {"electric", "water", "internet", "phone"},
	"{book}":     {"business", "self-help", "technical", "novel"},
	"{skill}":    {"coding", "writing", "drawing", "language"},
}
