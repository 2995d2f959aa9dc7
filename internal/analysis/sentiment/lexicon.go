package sentiment

// Curated polarity word sets used for the binary sentiment score.
var (
	positiveWords = []string{
		"happy", "good", "great", "excellent", "wonderful", "fantastic", "amazing", "pleased",
		"love", "enjoy", "like", "glad", "excited", "thrilled", "delighted", "satisfied",
		"proud", "confident", "calm", "peaceful", "relaxed", "grateful", "thankful",
	}
	negativeWords = []string{
		"sad", "bad", "terrible", "awful", "horrible", "disappointing", "upset", "angry",
		"hate", "dislike", "annoyed", "frustrated", "furious", "worried", "anxious", "stressed",
		"afraid", "scared", "tired", "exhausted", "bored", "confused", "overwhelmed",
	}
)

// emotionLexicon maps each emotion to its seed words. The reference vector for
// an emotion is the mean embedding of its seeds, computed once at startup.
// The last six entries drive the productivity mood triple.
var emotionLexicon = map[string][]string{
	"joy":          {"happy", "joy", "delighted", "excited", "thrilled", "pleased", "content", "cheerful"},
	"sadness":      {"sad", "unhappy", "depressed", "grief", "heartbroken", "miserable", "disappointed", "blue"},
	"anger":        {"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage", "outraged"},
	"fear":         {"afraid", "scared", "frightened", "terrified", "anxious", "worried", "panic", "nervous"},
	"surprise":     {"surprised", "amazed", "astonished", "shocked", "stunned", "startled", "unexpected"},
	"trust":        {"trust", "believe", "confidence", "faithful", "reliable", "dependable", "loyal"},
	"anticipation": {"anticipate", "expect", "hope", "waiting", "eager"},
	"disgust":      {"disgusted", "hate", "dislike", "aversion", "repulsed", "revolted", "sick"},

	"motivated":    {"motivated", "inspired", "determined", "focused", "energized", "driven", "goal"},
	"unmotivated":  {"unmotivated", "uninspired", "lazy", "procrastinate", "distracted", "apathetic"},
	"productive":   {"productive", "efficient", "effective", "accomplish", "completed", "achieved", "finished"},
	"unproductive": {"unproductive", "inefficient", "ineffective", "wasted", "distracted", "unfinished"},
	"stressed":     {"stressed", "overwhelmed", "pressured", "swamped", "overworked", "burnout", "burden"},
	"relieved":     {"relieved", "unburdened", "destressed", "unwound", "relaxed", "released"},
}
