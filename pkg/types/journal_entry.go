package types

type JournalEntry struct {
	ID          string  `json:"id" db:"id"`
	UserID      string  `json:"user_id" db:"user_id"`
	Title       string  `json:"title" db:"title"`
	Content     string  `json:"content" db:"content"`
	TemplateID  string  `json:"template_id,omitempty" db:"template_id"`
	FieldValues JSONRaw `json:"field_values,omitempty" db:"field_values"`
	WordCount   int64   `json:"word_count" db:"word_count"`
	IsEncrypt   int     `json:"-" db:"is_encrypt"`
	CreatedAt   int64   `json:"created_at" db:"created_at"`
	UpdatedAt   int64   `json:"updated_at" db:"updated_at"`
}

const (
	ENTRY_ENCRYPT_OFF = 0
	ENTRY_ENCRYPT_ON  = 1
)

// UpdateJournalEntryArgs carries a full-field update; partial patches are not
// supported.
type UpdateJournalEntryArgs struct {
	Title       string
	Content     string
	TemplateID  string
	FieldValues JSONRaw
	WordCount   int64
	IsEncrypt   int
}

type ListJournalEntryOptions struct {
	UserID string
}
