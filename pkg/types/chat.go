package types

type ChatSession struct {
	ID               string `json:"id" db:"id"`
	UserID           string `json:"user_id" db:"user_id"`
	Title            string `json:"title" db:"title"`
	CreatedAt        int64  `json:"created_at" db:"created_at"`
	LatestAccessTime int64  `json:"latest_access_time" db:"latest_access_time"`
}

type ChatMessage struct {
	ID        string          `json:"id" db:"id"`
	SessionID string          `json:"session_id" db:"session_id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Role      MessageUserRole `json:"role" db:"role"`
	Message   string          `json:"message" db:"message"`
	Sequence  int64           `json:"sequence" db:"sequence"`
	SendTime  int64           `json:"send_time" db:"send_time"`
}

type MessageUserRole string

const (
	USER_ROLE_USER_MESSAGE      MessageUserRole = "user"
	USER_ROLE_ASSISTANT_MESSAGE MessageUserRole = "assistant"
	USER_ROLE_TOOL_MESSAGE      MessageUserRole = "tool"
)
