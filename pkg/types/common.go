package types

const (
	NO_PAGINATION = 0
)

const (
	LANGUAGE_EN_KEY = "en"
)

const (
	DEFAULT_APPID = "daygo"
)

const (
	USER_ROLE_MEMBER = "member"
	USER_ROLE_ADMIN  = "admin"
)

// Subscription tiers.
const (
	PLAN_FREE = "free"
	PLAN_PRO  = "pro"
	PLAN_TEAM = "team"
)

// PlanLimits holds the per-tier advisory creation limits.
type PlanLimits struct {
	MaxEntries   int64 `json:"max_entries"`
	MaxTemplates int64 `json:"max_templates"`
}

var planLimits = map[string]PlanLimits{
	PLAN_FREE: {MaxEntries: 100, MaxTemplates: 5},
	PLAN_PRO:  {MaxEntries: 10000, MaxTemplates: 100},
	PLAN_TEAM: {MaxEntries: 100000, MaxTemplates: 500},
}

// LimitsForPlan returns the advisory limits for a tier, defaulting unknown
// tiers to the free plan.
func LimitsForPlan(plan string) PlanLimits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[PLAN_FREE]
}

func IsValidPlan(plan string) bool {
	_, ok := planLimits[plan]
	return ok
}
