package types

type User struct {
	ID        string `json:"id" db:"id"`
	Appid     string `json:"appid" db:"appid"`
	Name      string `json:"name" db:"name"`
	Avatar    string `json:"avatar" db:"avatar"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"-" db:"password"`
	Salt      string `json:"-" db:"salt"`
	Role      string `json:"role" db:"role"`
	PlanID    string `json:"plan_id" db:"plan_id"`
	Source    string `json:"source" db:"source"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}

const (
	USER_SOURCE_EMAIL = "email"
)
