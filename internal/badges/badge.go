package badges

// Category groups badges by the activity that earns them.
type Category string

const (
	CategoryPractice    Category = "practice"
	CategoryStudy       Category = "study"
	CategoryPerformance Category = "performance"
)

// Criteria is the rule attached to a badge. A zero field means the
// criterion is absent; at least one criterion is always set (the catalog
// schema enforces it).
type Criteria struct {
	Streak           int `json:"streak,omitempty"`
	CorrectAnswers   int `json:"correctAnswers,omitempty"`
	ScorePercentage  int `json:"scorePercentage,omitempty"`
	MinQuestions     int `json:"minQuestions,omitempty"`
	ModulesCompleted int `json:"modulesCompleted,omitempty"`
}

// Badge is a one-time-earnable achievement definition.
type Badge struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Criteria    Criteria `json:"criteria"`
}

// Icon returns the display icon for the badge category.
func (c Category) Icon() string {
	switch c {
	case CategoryPractice:
		return "🎯"
	case CategoryStudy:
		return "📖"
	case CategoryPerformance:
		return "📈"
	default:
		return "✦"
	}
}
