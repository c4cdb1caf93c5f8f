package types

type CountdownEvent struct {
	ID         string `json:"id" db:"id"`
	UserID     string `json:"user_id" db:"user_id"`
	Title      string `json:"title" db:"title"`
	TargetDate string `json:"target_date" db:"target_date"`
	Category   string `json:"category" db:"category"`
	Priority   int    `json:"priority" db:"priority"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
	UpdatedAt  int64  `json:"updated_at" db:"updated_at"`
}

// CountdownEventView adds the read-time past/upcoming classification and the
// day distance from today.
type CountdownEventView struct {
	CountdownEvent
	IsPast   bool  `json:"is_past"`
	DaysLeft int64 `json:"days_left"`
}

type DayScore struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Date      string `json:"date" db:"date"`
	Score     int    `json:"score" db:"score"`
	Note      string `json:"note" db:"note"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}

type DaySegment struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Date      string `json:"date" db:"date"`
	Title     string `json:"title" db:"title"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
	Category  string `json:"category" db:"category"`
	Priority  int    `json:"priority" db:"priority"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}
