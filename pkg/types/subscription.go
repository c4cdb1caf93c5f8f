package types

type Subscription struct {
	ID              string `json:"id" db:"id"`
	UserID          string `json:"user_id" db:"user_id"`
	PlanID          string `json:"plan_id" db:"plan_id"`
	Status          string `json:"status" db:"status"`
	ProviderSubID   string `json:"provider_sub_id" db:"provider_sub_id"`
	ProviderCustID  string `json:"provider_cust_id" db:"provider_cust_id"`
	CurrentPeriodAt int64  `json:"current_period_at" db:"current_period_at"`
	CreatedAt       int64  `json:"created_at" db:"created_at"`
	UpdatedAt       int64  `json:"updated_at" db:"updated_at"`
}

const (
	SUBSCRIPTION_STATUS_ACTIVE   = "active"
	SUBSCRIPTION_STATUS_CANCELED = "canceled"
	SUBSCRIPTION_STATUS_PAST_DUE = "past_due"
)

type UsageStats struct {
	UserID        string `json:"user_id" db:"user_id"`
	EntryCount    int64  `json:"entry_count" db:"entry_count"`
	TemplateCount int64  `json:"template_count" db:"template_count"`
	UpdatedAt     int64  `json:"updated_at" db:"updated_at"`
}
