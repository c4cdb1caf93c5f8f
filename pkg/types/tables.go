package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "daygo_"

const (
	TABLE_USER             = TableName("user")
	TABLE_ACCESS_TOKEN     = TableName("access_token")
	TABLE_JOURNAL_ENTRY    = TableName("journal_entry")
	TABLE_JOURNAL_TEMPLATE = TableName("journal_template")
	TABLE_TEMPLATE_LIKE    = TableName("template_like")
	TABLE_WRITING_GOAL     = TableName("writing_goal")
	TABLE_COUNTDOWN_EVENT  = TableName("countdown_event")
	TABLE_DAY_SCORE        = TableName("day_score")
	TABLE_DAY_SEGMENT      = TableName("day_segment")
	TABLE_CHAT_SESSION     = TableName("chat_session")
	TABLE_CHAT_MESSAGE     = TableName("chat_message")
	TABLE_SUBSCRIPTION     = TableName("subscription")
	TABLE_USAGE_STATS      = TableName("usage_stats")
)
