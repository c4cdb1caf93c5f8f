package types

type WritingGoal struct {
	ID          string `json:"id" db:"id"`
	UserID      string `json:"user_id" db:"user_id"`
	TargetWords int64  `json:"target_words" db:"target_words"`
	Period      string `json:"period" db:"period"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
	UpdatedAt   int64  `json:"updated_at" db:"updated_at"`
}

const (
	GOAL_PERIOD_DAILY   = "daily"
	GOAL_PERIOD_WEEKLY  = "weekly"
	GOAL_PERIOD_MONTHLY = "monthly"
)

func IsValidGoalPeriod(period string) bool {
	switch period {
	case GOAL_PERIOD_DAILY, GOAL_PERIOD_WEEKLY, GOAL_PERIOD_MONTHLY:
		return true
	}
	return false
}

// GoalProgress is a goal enriched with the words written inside the current
// period, computed at read time.
type GoalProgress struct {
	WritingGoal
	WrittenWords int64   `json:"written_words"`
	Percent      float64 `json:"percent"`
}
